package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/persons/internal/metrics"
)

// MetricsServer serves /metrics on its own port so the API port never exposes it.
type MetricsServer struct {
	listener *listener
	router   *gin.Engine
}

// NewMetricsServer creates a new MetricsServer. A nil provider serves only 404s.
func NewMetricsServer(host string, port int, logger *slog.Logger, provider *metrics.Provider) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(logger))
	router.NoRoute(notFoundHandler)

	if provider != nil {
		router.GET("/metrics", gin.WrapH(provider.Handler()))
	}

	return &MetricsServer{
		listener: newListener("metrics", host, port, logger),
		router:   router,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.router
}

// Start serves /metrics until Shutdown is called.
func (s *MetricsServer) Start(ctx context.Context) error {
	return s.listener.serve(s.router)
}

// Shutdown gracefully shuts down the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.listener.shutdown(ctx)
}
