package domain

import "math"

// FocusRecord is an immutable contribution of focus time toward a wish.
// Records are never edited or deleted; corrections are compensating records.
type FocusRecord struct {
	ID        string  `json:"id"`
	WishID    string  `json:"wishId"`
	Hours     float64 `json:"hours"`
	Note      string  `json:"note"`
	CreatedAt Millis  `json:"timestamp"`
}

// ValidateHours checks that hours is a positive, finite number.
func ValidateHours(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return ErrInvalidHours
	}
	return nil
}
