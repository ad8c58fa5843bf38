// Package errors provides the storage-facing error vocabulary shared by repositories and use cases.
// Repositories translate driver failures into these sentinels; use cases classify them into
// per-operation domain errors before anything reaches the HTTP layer.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors reported by repositories.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data failed validation.
	ErrInvalidInput = errors.New("invalid input")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap but formats the context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
