package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all backends.
var (
	// ErrNotFound is returned by Get when the key does not exist.
	ErrNotFound = errors.New("key not found")

	// ErrUnavailable is returned when the backend cannot serve requests at all,
	// for example because the file could not be opened or the quota is exhausted.
	ErrUnavailable = errors.New("store unavailable")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store closed")

	// ErrInvalidKey is returned for an empty key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrEncoding is returned when a stored value cannot be decoded as JSON
	// or a value cannot be encoded.
	ErrEncoding = errors.New("value encoding failed")
)

// IsNotFoundError checks if the error is a missing-key error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError carries the backend, operation and key of a failed call.
type StoreError struct {
	Backend   string // e.g. "bolt", "sqlite"
	Operation string // get, set, delete, keys
	Key       string // key or prefix, may be empty
	Err       error  // original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Backend, e.Operation, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Backend, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(backend, operation, key string, err error) *StoreError {
	return &StoreError{
		Backend:   backend,
		Operation: operation,
		Key:       key,
		Err:       err,
	}
}
