// Package http provides the API server, its router and shared middleware.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/allisson/persons/internal/config"
	"github.com/allisson/persons/internal/httputil"
	"github.com/allisson/persons/internal/metrics"
	personHTTP "github.com/allisson/persons/internal/person/http"
)

// readinessTimeout bounds the database ping done by /ready.
const readinessTimeout = 2 * time.Second

// Server is the API HTTP server.
type Server struct {
	db       *sql.DB
	listener *listener
	router   *gin.Engine
	logger   *slog.Logger
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:       db,
		logger:   logger,
		listener: newListener("api", host, port, logger),
	}
}

// SetupRouter builds the gin engine with middleware and all routes.
// A nil meterProvider disables HTTP metrics.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	personHandler *personHTTP.PersonHandler,
	meterProvider metric.MeterProvider,
) {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.CORSEnabled {
		if corsMiddleware := newCORSMiddleware(cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
			router.Use(corsMiddleware)
		}
	}

	if meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	persons := router.Group("")
	if cfg.RateLimitEnabled {
		persons.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		persons.POST("/pessoas", personHandler.CreateHandler)
		persons.GET("/pessoas/:id", personHandler.GetHandler)
		persons.GET("/pessoas", personHandler.SearchHandler)
		persons.GET("/contagem-pessoas", personHandler.CountHandler)
	}

	router.NoRoute(notFoundHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		s.notReady(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		s.notReady(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}

func (s *Server) notReady(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":     "not_ready",
		"components": gin.H{"database": "error"},
	})
}

func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, httputil.ErrorResponse{Message: "not found"})
}

// Start serves the router until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	return s.listener.serve(s.router)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.listener.shutdown(ctx)
}
