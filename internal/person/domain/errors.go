package domain

import (
	"net/http"
)

// Fixed client-facing messages of the person operation errors.
const (
	MessageNicknameAlreadyExists = "there is already a person with that nickname"
	MessagePersonNotFound        = "person not found"
	MessageUnknown               = "unknown error"
)

// CreatePersonErrorKind enumerates the failures of the create operation.
type CreatePersonErrorKind int

const (
	// CreatePersonUnknown covers every storage failure not classified below.
	CreatePersonUnknown CreatePersonErrorKind = iota
	// CreatePersonNicknameAlreadyExists means the nickname uniqueness constraint rejected the insert.
	CreatePersonNicknameAlreadyExists
)

// CreatePersonError is returned by the create operation.
// Error text is fixed per kind; the storage cause is only reachable through Unwrap.
type CreatePersonError struct {
	Kind  CreatePersonErrorKind
	cause error
}

// NewCreatePersonError builds a create failure of the given kind.
func NewCreatePersonError(kind CreatePersonErrorKind, cause error) *CreatePersonError {
	return &CreatePersonError{Kind: kind, cause: cause}
}

func (e *CreatePersonError) Error() string {
	switch e.Kind {
	case CreatePersonNicknameAlreadyExists:
		return MessageNicknameAlreadyExists
	default:
		return MessageUnknown
	}
}

// StatusCode maps the kind to its HTTP status.
func (e *CreatePersonError) StatusCode() int {
	switch e.Kind {
	case CreatePersonNicknameAlreadyExists:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (e *CreatePersonError) Unwrap() error {
	return e.cause
}

// GetPersonErrorKind enumerates the failures of the get-by-id operation.
type GetPersonErrorKind int

const (
	// GetPersonUnknown covers every storage failure other than a missing row.
	GetPersonUnknown GetPersonErrorKind = iota
	// GetPersonNotFound means no person has the requested identifier.
	GetPersonNotFound
)

// GetPersonError is returned by the get-by-id operation.
type GetPersonError struct {
	Kind  GetPersonErrorKind
	cause error
}

// NewGetPersonError builds a get-by-id failure of the given kind.
func NewGetPersonError(kind GetPersonErrorKind, cause error) *GetPersonError {
	return &GetPersonError{Kind: kind, cause: cause}
}

func (e *GetPersonError) Error() string {
	switch e.Kind {
	case GetPersonNotFound:
		return MessagePersonNotFound
	default:
		return MessageUnknown
	}
}

// StatusCode maps the kind to its HTTP status.
func (e *GetPersonError) StatusCode() int {
	switch e.Kind {
	case GetPersonNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (e *GetPersonError) Unwrap() error {
	return e.cause
}

// SearchPersonsError is returned by the search operation. Its only kind is unknown.
type SearchPersonsError struct {
	cause error
}

// NewSearchPersonsError wraps a storage failure of the search operation.
func NewSearchPersonsError(cause error) *SearchPersonsError {
	return &SearchPersonsError{cause: cause}
}

func (e *SearchPersonsError) Error() string {
	return MessageUnknown
}

// StatusCode always reports 500.
func (e *SearchPersonsError) StatusCode() int {
	return http.StatusInternalServerError
}

func (e *SearchPersonsError) Unwrap() error {
	return e.cause
}

// CountPersonsError is returned by the count operation. Its only kind is unknown.
type CountPersonsError struct {
	cause error
}

// NewCountPersonsError wraps a storage failure of the count operation.
func NewCountPersonsError(cause error) *CountPersonsError {
	return &CountPersonsError{cause: cause}
}

func (e *CountPersonsError) Error() string {
	return MessageUnknown
}

// StatusCode always reports 500.
func (e *CountPersonsError) StatusCode() int {
	return http.StatusInternalServerError
}

func (e *CountPersonsError) Unwrap() error {
	return e.cause
}
