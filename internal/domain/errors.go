package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Specific validation errors below wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidYear is returned when a planet year is outside the supported range.
	ErrInvalidYear = fmtValidation("year must be between 1 and 9999")

	// ErrInvalidHours is returned when a focus contribution is not a positive, finite number.
	ErrInvalidHours = fmtValidation("hours must be a positive, finite number")

	// ErrEmptyWishText is returned when a wish has no text.
	ErrEmptyWishText = fmtValidation("wish text cannot be empty")

	// ErrTooManyWishes is returned when a wish list exceeds the configured bound.
	ErrTooManyWishes = fmtValidation("too many wishes")

	// ErrInvalidCategory is returned when a wish category is not one of the known categories.
	ErrInvalidCategory = fmtValidation("invalid wish category")

	// ErrInvalidLayout is returned when a vision board layout is neither grid nor free.
	ErrInvalidLayout = fmtValidation("invalid board layout")

	// ErrInvalidBoardItem is returned when a board item has an unknown type or a negative size.
	ErrInvalidBoardItem = fmtValidation("invalid board item")

	// ErrInvalidVolume is returned when the volume setting is outside [0,1].
	ErrInvalidVolume = fmtValidation("volume must be between 0 and 1")

	// ErrInvalidMilestone is returned for an unknown milestone name.
	ErrInvalidMilestone = fmtValidation("invalid milestone")
)

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }

func fmtValidation(msg string) error {
	return &validationError{msg: msg}
}

// IsValidationError reports whether err is any domain validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
