package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "github.com/allisson/persons/internal/errors"
	"github.com/allisson/persons/internal/person/domain"
)

// PostgreSQLPersonRepository implements Person persistence for PostgreSQL. The stack is a text[] column.
type PostgreSQLPersonRepository struct {
	db *sql.DB
}

// NewPostgreSQLPersonRepository creates a new PostgreSQL Person repository.
func NewPostgreSQLPersonRepository(db *sql.DB) *PostgreSQLPersonRepository {
	return &PostgreSQLPersonRepository{db: db}
}

// Create assigns the person an identifier and inserts it.
func (p *PostgreSQLPersonRepository) Create(ctx context.Context, person *domain.Person) error {
	if err := assignID(person); err != nil {
		return err
	}

	query := `INSERT INTO persons (id, nickname, name, birthdate, stack, search)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := p.db.ExecContext(
		ctx,
		query,
		person.ID,
		person.Nickname,
		person.Name,
		person.Birthdate,
		pq.Array(normalizeStack(person.Stack)),
		searchText(person),
	)
	if err != nil {
		return createError(person, err)
	}
	return nil
}

// GetByID retrieves a person by identifier.
func (p *PostgreSQLPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	query := `SELECT id, nickname, name, birthdate, stack FROM persons WHERE id = $1`

	person, err := scanPostgreSQLPerson(p.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "person %s", id)
		}
		return nil, apperrors.Wrap(err, "failed to get person")
	}
	return person, nil
}

// Search returns at most limit persons whose search column contains term, ignoring case.
func (p *PostgreSQLPersonRepository) Search(ctx context.Context, term string, limit int) ([]*domain.Person, error) {
	query := `SELECT id, nickname, name, birthdate, stack FROM persons WHERE search ILIKE $1 LIMIT $2`

	rows, err := p.db.QueryContext(ctx, query, containsPattern(term), limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search persons")
	}
	defer func() {
		_ = rows.Close()
	}()

	persons := make([]*domain.Person, 0)
	for rows.Next() {
		person, err := scanPostgreSQLPerson(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan person")
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate persons")
	}

	return persons, nil
}

// Count returns the number of persons.
func (p *PostgreSQLPersonRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons`).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count persons")
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgreSQLPerson(row rowScanner) (*domain.Person, error) {
	var person domain.Person
	var stack pq.StringArray

	if err := row.Scan(&person.ID, &person.Nickname, &person.Name, &person.Birthdate, &stack); err != nil {
		return nil, err
	}

	person.Stack = normalizeStack(stack)
	return &person, nil
}
