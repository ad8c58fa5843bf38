package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// listener owns the net/http lifecycle shared by the API and metrics servers.
type listener struct {
	name   string
	srv    *http.Server
	logger *slog.Logger
}

func newListener(name, host string, port int, logger *slog.Logger) *listener {
	return &listener{
		name:   name,
		logger: logger.With(slog.String("listener", name)),
		srv: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

func (l *listener) addr() string {
	return l.srv.Addr
}

// serve blocks until shutdown is called. A clean shutdown returns nil.
func (l *listener) serve(handler http.Handler) error {
	l.srv.Handler = handler

	l.logger.Info("server listening", slog.String("addr", l.srv.Addr))

	if err := l.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s server: %w", l.name, err)
	}

	return nil
}

func (l *listener) shutdown(ctx context.Context) error {
	l.logger.Info("shutting down server")

	if err := l.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down %s server: %w", l.name, err)
	}

	return nil
}
