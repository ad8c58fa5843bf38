// Package usecase defines the interfaces and implementations for person use cases.
// Use cases call the repository and translate storage failures into the per-operation
// error types of the domain package.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/persons/internal/person/domain"
)

// PersonRepository defines the interface for Person persistence operations.
type PersonRepository interface {
	// Create assigns person.ID and inserts the row. A duplicate nickname returns an ErrConflict-wrapped error.
	Create(ctx context.Context, person *domain.Person) error
	// GetByID returns an ErrNotFound-wrapped error when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	// Search matches term case-insensitively as a substring of the searchable text, returning at most limit rows.
	Search(ctx context.Context, term string, limit int) ([]*domain.Person, error)
	Count(ctx context.Context) (int64, error)
}

// PersonUseCase defines the interface for person business logic.
// Every returned error is one of the domain operation error types.
type PersonUseCase interface {
	Create(ctx context.Context, person *domain.Person) (*domain.Person, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	Search(ctx context.Context, term string) ([]*domain.Person, error)
	Count(ctx context.Context) (int64, error)
}
