package dto

import (
	"github.com/allisson/persons/internal/person/domain"
)

// PersonResponse is the JSON shape of a person in GET responses.
type PersonResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Nickname  string      `json:"nickname"`
	Birthdate domain.Date `json:"birthdate"`
	Stack     []string    `json:"stack"`
}

// MapPersonToResponse converts a domain person to its API representation.
func MapPersonToResponse(person *domain.Person) PersonResponse {
	stack := person.Stack
	if stack == nil {
		stack = []string{}
	}

	return PersonResponse{
		ID:        person.ID.String(),
		Name:      person.Name,
		Nickname:  person.Nickname,
		Birthdate: person.Birthdate,
		Stack:     stack,
	}
}

// MapPersonsToResponse converts search results. The result is never nil so it encodes as [].
func MapPersonsToResponse(persons []*domain.Person) []PersonResponse {
	data := make([]PersonResponse, 0, len(persons))
	for _, person := range persons {
		data = append(data, MapPersonToResponse(person))
	}
	return data
}
