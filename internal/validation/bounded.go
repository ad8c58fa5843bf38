package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	apperrors "github.com/allisson/persons/internal/errors"
)

// Bounds supplies the inclusive character-length range of a BoundedString.
// Implementations are zero-size types so the range is fixed at compile time.
type Bounds interface {
	MinLength() int
	MaxLength() int
}

// LengthError reports a string whose character length falls outside [Min, Max].
type LengthError struct {
	Value  string
	Length int
	Min    int
	Max    int
}

// Error describes the offending value and the expected range.
func (e *LengthError) Error() string {
	return fmt.Sprintf(
		"invalid value %q (%d characters): expected a string no shorter than %d and no longer than %d characters",
		e.Value,
		e.Length,
		e.Min,
		e.Max,
	)
}

// Unwrap classifies length violations as invalid input.
func (e *LengthError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// CheckLength returns a *LengthError when raw has fewer than min or more than max characters.
// Length is measured in Unicode code points.
func CheckLength(raw string, min, max int) error {
	n := utf8.RuneCountInString(raw)
	if n < min || n > max {
		return &LengthError{Value: raw, Length: n, Min: min, Max: max}
	}
	return nil
}

// BoundedString is text whose length satisfied B at construction. The zero value holds the
// empty string and is only produced by declaring a variable, never by NewBoundedString or
// UnmarshalJSON, so DTOs use *BoundedString to detect absent fields.
type BoundedString[B Bounds] struct {
	value string
}

// NewBoundedString validates raw against B and wraps it.
func NewBoundedString[B Bounds](raw string) (BoundedString[B], error) {
	var bounds B
	if err := CheckLength(raw, bounds.MinLength(), bounds.MaxLength()); err != nil {
		return BoundedString[B]{}, err
	}
	return BoundedString[B]{value: raw}, nil
}

// MustBoundedString is like NewBoundedString but panics on invalid input. Intended for tests
// and constants.
func MustBoundedString[B Bounds](raw string) BoundedString[B] {
	s, err := NewBoundedString[B](raw)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns a copy of the wrapped text. It is the only accessor, serving
// both callers that only read the text and callers that keep it past the value.
func (s BoundedString[B]) String() string {
	return s.value
}

// UnmarshalJSON accepts only JSON strings within the length range of B.
func (s *BoundedString[B]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: expected a string, got null", apperrors.ErrInvalidInput)
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewBoundedString[B](raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

// MarshalJSON encodes the wrapped text as a JSON string.
func (s BoundedString[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}
