package domain

import "time"

// Millis is a point in time in milliseconds since the Unix epoch. It is the
// timestamp unit of the persisted and exported document.
type Millis int64

// MillisOf converts t to Millis.
func MillisOf(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

// MillisPtr converts t to a *Millis, for the nullable timestamp fields.
func MillisPtr(t time.Time) *Millis {
	m := MillisOf(t)
	return &m
}

// Time returns m as a UTC time.Time.
func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m)).UTC()
}

// IsZero reports whether m is unset.
func (m Millis) IsZero() bool {
	return m == 0
}
