package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/persons/internal/errors"
	"github.com/allisson/persons/internal/person/domain"
	"github.com/allisson/persons/internal/person/usecase"
	"github.com/allisson/persons/internal/testutil"
)

type backend struct {
	name  string
	setup func(t *testing.T) *sql.DB
	repo  func(db *sql.DB) usecase.PersonRepository
}

var backends = []backend{
	{
		name:  "postgresql",
		setup: testutil.SetupPostgresDB,
		repo:  func(db *sql.DB) usecase.PersonRepository { return NewPostgreSQLPersonRepository(db) },
	},
	{
		name:  "mysql",
		setup: testutil.SetupMySQLDB,
		repo:  func(db *sql.DB) usecase.PersonRepository { return NewMySQLPersonRepository(db) },
	},
}

func TestPersonRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			db := b.setup(t)
			defer testutil.TeardownDB(t, db)

			repo := b.repo(db)
			ctx := context.Background()

			maria := newMaria()
			require.NoError(t, repo.Create(ctx, maria))

			t.Run("GetByID", func(t *testing.T) {
				got, err := repo.GetByID(ctx, maria.ID)
				require.NoError(t, err)
				assert.Equal(t, maria, got)
			})

			t.Run("GetByID_NotFound", func(t *testing.T) {
				_, err := repo.GetByID(ctx, uuid.Must(uuid.NewV7()))
				assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
			})

			t.Run("Create_DuplicateNickname", func(t *testing.T) {
				dup := newMaria()
				dup.Name = "Maria Duplicada"
				err := repo.Create(ctx, dup)
				assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
				assert.Equal(t, int64(1), testutil.CountPersons(t, db))
			})

			t.Run("Search_CaseInsensitive", func(t *testing.T) {
				for _, term := range []string{"mar", "MAR", "java", "Maria maria"} {
					persons, err := repo.Search(ctx, term, domain.SearchLimit)
					require.NoError(t, err)
					require.Len(t, persons, 1, term)
					assert.Equal(t, maria.ID, persons[0].ID)
				}
			})

			t.Run("Search_Metacharacters", func(t *testing.T) {
				persons, err := repo.Search(ctx, "%", domain.SearchLimit)
				require.NoError(t, err)
				assert.Empty(t, persons)
			})

			t.Run("Search_AccentSensitive", func(t *testing.T) {
				jose := newMaria()
				jose.Nickname = "zezinho"
				jose.Name = "José Silva"
				jose.Stack = []string{"Go"}
				require.NoError(t, repo.Create(ctx, jose))

				persons, err := repo.Search(ctx, "José", domain.SearchLimit)
				require.NoError(t, err)
				require.Len(t, persons, 1)
				assert.Equal(t, jose.ID, persons[0].ID)

				persons, err = repo.Search(ctx, "jose", domain.SearchLimit)
				require.NoError(t, err)
				assert.Empty(t, persons)
			})

			t.Run("Search_Cap", func(t *testing.T) {
				for i := range 60 {
					p := newMaria()
					p.Nickname = fmt.Sprintf("capped-%02d", i)
					require.NoError(t, repo.Create(ctx, p))
				}

				persons, err := repo.Search(ctx, "capped", domain.SearchLimit)
				require.NoError(t, err)
				assert.Len(t, persons, domain.SearchLimit)
			})

			t.Run("Count", func(t *testing.T) {
				count, err := repo.Count(ctx)
				require.NoError(t, err)
				assert.Equal(t, int64(62), count)
			})

			t.Run("Create_ConcurrentSameNickname", func(t *testing.T) {
				const attempts = 8
				var wg sync.WaitGroup
				errs := make(chan error, attempts)

				for range attempts {
					wg.Add(1)
					go func() {
						defer wg.Done()
						p := newMaria()
						p.Nickname = "race"
						errs <- repo.Create(ctx, p)
					}()
				}
				wg.Wait()
				close(errs)

				var created, conflicts int
				for err := range errs {
					switch {
					case err == nil:
						created++
					case apperrors.Is(err, apperrors.ErrConflict):
						conflicts++
					default:
						t.Errorf("unexpected error: %v", err)
					}
				}
				assert.Equal(t, 1, created)
				assert.Equal(t, attempts-1, conflicts)
			})
		})
	}
}
