// Package repository implements Person persistence for PostgreSQL and MySQL.
// Both backends store a precomputed search column and enforce nickname uniqueness with a
// UNIQUE constraint, translating violations into ErrConflict.
package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/persons/internal/database"
	apperrors "github.com/allisson/persons/internal/errors"
	"github.com/allisson/persons/internal/person/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchText builds the value of the search column: name, nickname and stack joined by spaces.
func searchText(person *domain.Person) string {
	parts := make([]string, 0, len(person.Stack)+2)
	parts = append(parts, person.Name, person.Nickname)
	parts = append(parts, person.Stack...)
	return strings.Join(parts, " ")
}

// containsPattern returns a LIKE pattern matching term literally anywhere in the column.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// assignID gives person a fresh UUIDv7 unless it already has one.
func assignID(person *domain.Person) error {
	if person.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return apperrors.Wrap(err, "failed to generate person id")
	}
	person.ID = id
	return nil
}

func createError(person *domain.Person, err error) error {
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%w: nickname %q: %w", apperrors.ErrConflict, person.Nickname, err)
	}
	return apperrors.Wrap(err, "failed to create person")
}

func normalizeStack(stack []string) []string {
	if stack == nil {
		return []string{}
	}
	return stack
}
