package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/allisson/persons/internal/errors"
	"github.com/allisson/persons/internal/person/domain"
)

// personUseCase implements the PersonUseCase interface.
type personUseCase struct {
	personRepo PersonRepository
}

// NewPersonUseCase creates a new PersonUseCase backed by the given repository.
func NewPersonUseCase(personRepo PersonRepository) PersonUseCase {
	return &personUseCase{personRepo: personRepo}
}

// Create inserts the person and returns it with its assigned identifier.
func (p *personUseCase) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if err := p.personRepo.Create(ctx, person); err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			return nil, domain.NewCreatePersonError(domain.CreatePersonNicknameAlreadyExists, err)
		}
		return nil, domain.NewCreatePersonError(domain.CreatePersonUnknown, err)
	}
	return person, nil
}

// Get returns the person with the given identifier.
func (p *personUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	person, err := p.personRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.NewGetPersonError(domain.GetPersonNotFound, err)
		}
		return nil, domain.NewGetPersonError(domain.GetPersonUnknown, err)
	}
	return person, nil
}

// Search returns up to domain.SearchLimit persons matching term. An empty term matches everyone.
func (p *personUseCase) Search(ctx context.Context, term string) ([]*domain.Person, error) {
	persons, err := p.personRepo.Search(ctx, term, domain.SearchLimit)
	if err != nil {
		return nil, domain.NewSearchPersonsError(err)
	}
	if len(persons) > domain.SearchLimit {
		persons = persons[:domain.SearchLimit]
	}
	return persons, nil
}

// Count returns the total number of persons.
func (p *personUseCase) Count(ctx context.Context) (int64, error) {
	count, err := p.personRepo.Count(ctx)
	if err != nil {
		return 0, domain.NewCountPersonsError(err)
	}
	return count, nil
}
