package domain

import "time"

// User is the single owner of all planets on a device. Wallet is an opaque
// identity handle and may be empty.
type User struct {
	Wallet    string `json:"wallet"`
	Nickname  string `json:"nickname"`
	CreatedAt Millis `json:"createdAt"`
}

// NewUser returns the empty default user created on first access.
func NewUser(now time.Time) *User {
	return &User{CreatedAt: MillisOf(now)}
}

// UserPatch lists the user fields a caller may change. Nil fields are left untouched.
type UserPatch struct {
	Wallet   *string `json:"wallet,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Wallet != nil {
		u.Wallet = *p.Wallet
	}
	if p.Nickname != nil {
		u.Nickname = *p.Nickname
	}
}
