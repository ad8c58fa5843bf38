package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/persons/internal/metrics"
	"github.com/allisson/persons/internal/person/domain"
)

const metricsDomain = "persons"

// personUseCaseWithMetrics decorates PersonUseCase with metrics instrumentation.
type personUseCaseWithMetrics struct {
	next    PersonUseCase
	metrics metrics.BusinessMetrics
}

// NewPersonUseCaseWithMetrics wraps a PersonUseCase with metrics recording.
func NewPersonUseCaseWithMetrics(useCase PersonUseCase, m metrics.BusinessMetrics) PersonUseCase {
	return &personUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *personUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	p.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Create records metrics for person creation.
func (p *personUseCaseWithMetrics) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	start := time.Now()
	created, err := p.next.Create(ctx, person)
	p.record(ctx, "person_create", start, err)
	return created, err
}

// Get records metrics for person lookups.
func (p *personUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	start := time.Now()
	person, err := p.next.Get(ctx, id)
	p.record(ctx, "person_get", start, err)
	return person, err
}

// Search records metrics for person searches.
func (p *personUseCaseWithMetrics) Search(ctx context.Context, term string) ([]*domain.Person, error) {
	start := time.Now()
	persons, err := p.next.Search(ctx, term)
	p.record(ctx, "person_search", start, err)
	return persons, err
}

// Count records metrics for person counts.
func (p *personUseCaseWithMetrics) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	count, err := p.next.Count(ctx)
	p.record(ctx, "person_count", start, err)
	return count, err
}
