package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	apperrors "github.com/allisson/persons/internal/errors"
	"github.com/allisson/persons/internal/person/domain"
)

// MySQLPersonRepository implements Person persistence for MySQL.
// Identifiers are BINARY(16) and the stack is a JSON array.
type MySQLPersonRepository struct {
	db *sql.DB
}

// NewMySQLPersonRepository creates a new MySQL Person repository.
func NewMySQLPersonRepository(db *sql.DB) *MySQLPersonRepository {
	return &MySQLPersonRepository{db: db}
}

// Create assigns the person an identifier and inserts it.
func (m *MySQLPersonRepository) Create(ctx context.Context, person *domain.Person) error {
	if err := assignID(person); err != nil {
		return err
	}

	id, err := person.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal person id")
	}

	stack, err := json.Marshal(normalizeStack(person.Stack))
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal person stack")
	}

	query := `INSERT INTO persons (id, nickname, name, birthdate, stack, search)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = m.db.ExecContext(
		ctx,
		query,
		id,
		person.Nickname,
		person.Name,
		person.Birthdate.String(),
		stack,
		searchText(person),
	)
	if err != nil {
		return createError(person, err)
	}
	return nil
}

// GetByID retrieves a person by identifier.
func (m *MySQLPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	binaryID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal person id")
	}

	query := `SELECT id, nickname, name, birthdate, stack FROM persons WHERE id = ?`

	person, err := scanMySQLPerson(m.db.QueryRowContext(ctx, query, binaryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "person %s", id)
		}
		return nil, apperrors.Wrap(err, "failed to get person")
	}
	return person, nil
}

// Search returns at most limit persons whose search column contains term, ignoring case.
func (m *MySQLPersonRepository) Search(ctx context.Context, term string, limit int) ([]*domain.Person, error) {
	query := `SELECT id, nickname, name, birthdate, stack FROM persons WHERE LOWER(search) LIKE LOWER(?) LIMIT ?`

	rows, err := m.db.QueryContext(ctx, query, containsPattern(term), limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search persons")
	}
	defer func() {
		_ = rows.Close()
	}()

	persons := make([]*domain.Person, 0)
	for rows.Next() {
		person, err := scanMySQLPerson(rows)
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
func (m *MySQLPersonRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons`).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count persons")
	}
	return count, nil
}

func scanMySQLPerson(row rowScanner) (*domain.Person, error) {
	var person domain.Person
	var id, stack []byte

	if err := row.Scan(&id, &person.Nickname, &person.Name, &person.Birthdate, &stack); err != nil {
		return nil, err
	}

	if err := person.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal person id")
	}
	if err := json.Unmarshal(stack, &person.Stack); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal person stack")
	}

	person.Stack = normalizeStack(person.Stack)
	return &person, nil
}
