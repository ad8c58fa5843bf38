package app

import (
	"fmt"

	"github.com/allisson/persons/internal/database"
	personHTTP "github.com/allisson/persons/internal/person/http"
	personRepository "github.com/allisson/persons/internal/person/repository"
	personUseCase "github.com/allisson/persons/internal/person/usecase"
)

// PersonRepository returns the person repository for the configured database driver.
func (c *Container) PersonRepository() (personUseCase.PersonRepository, error) {
	c.personRepositoryInit.Do(func() {
		var err error
		c.personRepository, err = c.initPersonRepository()
		c.setInitError("personRepository", err)
	})
	if err := c.initError("personRepository"); err != nil {
		return nil, err
	}
	return c.personRepository, nil
}

// PersonUseCase returns the person use case, wrapped with business metrics.
func (c *Container) PersonUseCase() (personUseCase.PersonUseCase, error) {
	c.personUseCaseInit.Do(func() {
		var err error
		c.personUseCase, err = c.initPersonUseCase()
		c.setInitError("personUseCase", err)
	})
	if err := c.initError("personUseCase"); err != nil {
		return nil, err
	}
	return c.personUseCase, nil
}

// PersonHandler returns the HTTP handler for the person endpoints.
func (c *Container) PersonHandler() (*personHTTP.PersonHandler, error) {
	c.personHandlerInit.Do(func() {
		var err error
		c.personHandler, err = c.initPersonHandler()
		c.setInitError("personHandler", err)
	})
	if err := c.initError("personHandler"); err != nil {
		return nil, err
	}
	return c.personHandler, nil
}

func (c *Container) initPersonRepository() (personUseCase.PersonRepository, error) {
	switch c.config.DBDriver {
	case database.DriverMySQL, database.DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for person repository: %w", err)
	}

	if c.config.DBDriver == database.DriverMySQL {
		return personRepository.NewMySQLPersonRepository(db), nil
	}
	return personRepository.NewPostgreSQLPersonRepository(db), nil
}

func (c *Container) initPersonUseCase() (personUseCase.PersonUseCase, error) {
	repo, err := c.PersonRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get person repository for person use case: %w", err)
	}

	baseUseCase := personUseCase.NewPersonUseCase(repo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for person use case: %w", err)
		}
		return personUseCase.NewPersonUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initPersonHandler() (*personHTTP.PersonHandler, error) {
	useCase, err := c.PersonUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get person use case for person handler: %w", err)
	}

	return personHTTP.NewPersonHandler(useCase, c.Logger()), nil
}
