// Package mocks provides mock implementations of the person use case interfaces for testing.
package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/persons/internal/person/domain"
)

// MockPersonRepository is a mock implementation of usecase.PersonRepository.
type MockPersonRepository struct {
	mock.Mock
}

// NewMockPersonRepository creates a mock whose expectations are asserted when the test ends.
func NewMockPersonRepository(t *testing.T) *MockPersonRepository {
	m := &MockPersonRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method. An optional Run callback may assign the identifier.
func (m *MockPersonRepository) Create(ctx context.Context, person *domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

// Search mocks the Search method.
func (m *MockPersonRepository) Search(ctx context.Context, term string, limit int) ([]*domain.Person, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Person), args.Error(1)
}

// Count mocks the Count method.
func (m *MockPersonRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPersonUseCase is a mock implementation of usecase.PersonUseCase.
type MockPersonUseCase struct {
	mock.Mock
}

// NewMockPersonUseCase creates a mock whose expectations are asserted when the test ends.
func NewMockPersonUseCase(t *testing.T) *MockPersonUseCase {
	m := &MockPersonUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockPersonUseCase) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	args := m.Called(ctx, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

// Get mocks the Get method.
func (m *MockPersonUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

// Search mocks the Search method.
func (m *MockPersonUseCase) Search(ctx context.Context, term string) ([]*domain.Person, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Person), args.Error(1)
}

// Count mocks the Count method.
func (m *MockPersonUseCase) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
