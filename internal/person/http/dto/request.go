// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/persons/internal/person/domain"
	customValidation "github.com/allisson/persons/internal/validation"
)

// CreatePersonRequest is the body of POST /pessoas.
// Length bounds are enforced while decoding; Validate only checks presence.
type CreatePersonRequest struct {
	Nickname  *customValidation.BoundedString[domain.NicknameLength]   `json:"apelido"`
	Name      *customValidation.BoundedString[domain.NameLength]       `json:"nome"`
	Birthdate *domain.Date                                             `json:"nascimento"`
	Stack     []customValidation.BoundedString[domain.StackItemLength] `json:"stack"`
}

// Validate checks that every required field was present in the body.
func (r *CreatePersonRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Nickname, validation.NotNil),
		validation.Field(&r.Name, validation.NotNil),
		validation.Field(&r.Birthdate, validation.NotNil),
	)
}

// ToDomain maps a validated request onto a new person without an identifier.
func (r *CreatePersonRequest) ToDomain() *domain.Person {
	stack := make([]string, 0, len(r.Stack))
	for _, item := range r.Stack {
		stack = append(stack, item.String())
	}

	return &domain.Person{
		Nickname:  r.Nickname.String(),
		Name:      r.Name.String(),
		Birthdate: *r.Birthdate,
		Stack:     stack,
	}
}
