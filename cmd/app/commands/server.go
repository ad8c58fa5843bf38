package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/allisson/persons/internal/app"
	"github.com/allisson/persons/internal/config"
)

// shutdowner is implemented by both the API and the metrics server.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// RunServer starts the API server, and the metrics server when enabled, and blocks until
// SIGINT/SIGTERM or a server failure. Both servers are then stopped within ShutdownTimeout.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server",
		slog.String("version", version),
		slog.String("environment", cfg.Environment),
		slog.String("db_driver", cfg.DBDriver),
	)

	defer closeContainer(container, logger)

	// Initializes the whole dependency graph, including the database pool
	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	servers := []shutdowner{server}
	serverErr := make(chan error, 2)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErr <- fmt.Errorf("api server error: %w", err)
		}
	}()

	if metricsServer != nil {
		servers = append(servers, metricsServer)
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				serverErr <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-serverErr:
		logger.Error("server error, initiating shutdown", slog.Any("error", runErr))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	return errors.Join(runErr, shutdownAll(shutdownCtx, servers))
}

// shutdownAll stops every server and joins their errors.
func shutdownAll(ctx context.Context, servers []shutdowner) error {
	var shutdownErrors []error
	for _, s := range servers {
		if err := s.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("%T shutdown: %w", s, err))
		}
	}
	return errors.Join(shutdownErrors...)
}
