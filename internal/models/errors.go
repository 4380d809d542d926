// internal/models/errors.go
package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when mutating or fetching an unknown id.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned for invalid state transitions and for deleting
	// records that are still referenced elsewhere.
	ErrConflict = errors.New("conflict")
	// ErrAuthentication is returned for bad credentials or inactive accounts.
	ErrAuthentication = errors.New("invalid credentials")
)

// ValidationError reports a missing required field, a duplicate unique key,
// or a missing foreign-key target.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError wraps an I/O failure while reading or writing a collection.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
