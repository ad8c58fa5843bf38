// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/allisson/persons/internal/config"
	"github.com/allisson/persons/internal/database"
	"github.com/allisson/persons/internal/http"
	"github.com/allisson/persons/internal/metrics"
	personHTTP "github.com/allisson/persons/internal/person/http"
	personUseCase "github.com/allisson/persons/internal/person/usecase"
)

// connectTimeout bounds the initial database ping.
const connectTimeout = 10 * time.Second

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access.
type Container struct {
	config *config.Config

	// ctx lives until Shutdown and bounds background goroutines such as the rate limiter sweep.
	ctx    context.Context
	cancel context.CancelFunc

	// Infrastructure
	logWriter       io.Writer
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Persons
	personRepository personUseCase.PersonRepository
	personUseCase    personUseCase.PersonUseCase
	personHandler    *personHTTP.PersonHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                   sync.Mutex
	loggerInit           sync.Once
	dbInit               sync.Once
	metricsProviderInit  sync.Once
	businessMetricsInit  sync.Once
	personRepositoryInit sync.Once
	personUseCaseInit    sync.Once
	personHandlerInit    sync.Once
	httpServerInit       sync.Once
	metricsServerInit    sync.Once
	errMu                sync.Mutex
	initErrors           map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		config:     cfg,
		logWriter:  os.Stdout,
		ctx:        ctx,
		cancel:     cancel,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// SetLogWriter redirects log output. It has no effect once Logger was called.
// CLI commands that print to stdout send logs to stderr with it.
func (c *Container) SetLogWriter(w io.Writer) {
	c.logWriter = w
}

// Logger returns the JSON logger writing to the log writer (stdout by default) at the configured level.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection pool.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		var err error
		c.db, err = c.initDB()
		c.setInitError("db", err)
	})
	if err := c.initError("db"); err != nil {
		return nil, err
	}
	return c.db, nil
}

// MetricsProvider returns the Prometheus-backed meter provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		var err error
		c.metricsProvider, err = c.initMetricsProvider()
		c.setInitError("metricsProvider", err)
	})
	if err := c.initError("metricsProvider"); err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the use case metrics recorder. It is a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		var err error
		c.businessMetrics, err = c.initBusinessMetrics()
		c.setInitError("businessMetrics", err)
	})
	if err := c.initError("businessMetrics"); err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API server with its router set up.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		var err error
		c.httpServer, err = c.initHTTPServer()
		c.setInitError("httpServer", err)
	})
	if err := c.initError("httpServer"); err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		var err error
		c.metricsServer, err = c.initMetricsServer()
		c.setInitError("metricsServer", err)
	})
	if err := c.initError("metricsServer"); err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown releases every initialized resource. Servers are expected to be stopped by the caller.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) setInitError(name string, err error) {
	if err == nil {
		return
	}
	c.errMu.Lock()
	defer c.errMu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.initErrors[name]
}

func (c *Container) initLogger() *slog.Logger {
	handler := slog.NewJSONHandler(c.logWriter, &slog.HandlerOptions{
		Level: c.config.SlogLevel(),
	})
	return slog.New(handler)
}

func (c *Container) initDB() (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(c.ctx, connectTimeout)
	defer cancel()

	db, err := database.Connect(ctx, c.config.Database())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	personHandler, err := c.PersonHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get person handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	if provider != nil {
		server.SetupRouter(c.ctx, c.config, personHandler, provider.MeterProvider())
	} else {
		server.SetupRouter(c.ctx, c.config, personHandler, nil)
	}

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
