// Package validation provides input validation primitives shared by the HTTP layer.
// BoundedString enforces a character-length range at construction and JSON decoding time,
// so request DTOs reject out-of-range text before any business logic runs.
package validation

import (
	"fmt"

	apperrors "github.com/allisson/persons/internal/errors"
)

// WrapValidationError marks jellydator/validation errors as ErrInvalidInput.
// The field messages stay readable after the sentinel prefix.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
}
