package domain

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/persons/internal/errors"
)

func TestOperationErrors_StatusMapping(t *testing.T) {
	cause := errors.New("pq: connection refused")

	tests := []struct {
		name    string
		err     interface{ StatusCode() int }
		status  int
		message string
	}{
		{
			name:    "create nickname already exists",
			err:     NewCreatePersonError(CreatePersonNicknameAlreadyExists, apperrors.ErrConflict),
			status:  http.StatusUnprocessableEntity,
			message: MessageNicknameAlreadyExists,
		},
		{
			name:    "create unknown",
			err:     NewCreatePersonError(CreatePersonUnknown, cause),
			status:  http.StatusInternalServerError,
			message: MessageUnknown,
		},
		{
			name:    "get not found",
			err:     NewGetPersonError(GetPersonNotFound, apperrors.ErrNotFound),
			status:  http.StatusNotFound,
			message: MessagePersonNotFound,
		},
		{
			name:    "get unknown",
			err:     NewGetPersonError(GetPersonUnknown, cause),
			status:  http.StatusInternalServerError,
			message: MessageUnknown,
		},
		{
			name:    "search unknown",
			err:     NewSearchPersonsError(cause),
			status:  http.StatusInternalServerError,
			message: MessageUnknown,
		},
		{
			name:    "count unknown",
			err:     NewCountPersonsError(cause),
			status:  http.StatusInternalServerError,
			message: MessageUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode())
			assert.Equal(t, tt.message, tt.err.(error).Error())
		})
	}
}

func TestOperationErrors_ZeroKindIsUnknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, (&CreatePersonError{}).StatusCode())
	assert.Equal(t, MessageUnknown, (&CreatePersonError{}).Error())
	assert.Equal(t, http.StatusInternalServerError, (&GetPersonError{}).StatusCode())
	assert.Equal(t, MessageUnknown, (&GetPersonError{}).Error())
}

func TestOperationErrors_MessageDoesNotLeakCause(t *testing.T) {
	cause := errors.New(`pq: relation "persons" does not exist`)
	err := NewCountPersonsError(cause)

	assert.NotContains(t, err.Error(), "persons")
	assert.ErrorIs(t, err, cause)
}
