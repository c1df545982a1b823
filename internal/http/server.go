// Package http provides the HTTP server, router and shared middleware of the IBAN API.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/ibancheck/internal/config"
	ibanHTTP "github.com/allisson/ibancheck/internal/iban/http"
	"github.com/allisson/ibancheck/internal/metrics"
)

// readinessTimeout bounds the database ping of the readiness probe.
const readinessTimeout = 2 * time.Second

// RegistryInfo reports the size of the loaded country registry.
type RegistryInfo interface {
	Len() int
}

// Server represents the HTTP server
type Server struct {
	db       *sql.DB
	registry RegistryInfo
	router   *gin.Engine
	server   *http.Server
	logger   *slog.Logger
}

// NewServer creates a new HTTP server. db is optional and only probed by /ready when set.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
// ctx bounds the background work started by the middleware (rate limiter cleanup).
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	registry RegistryInfo,
	ibanHandler *ibanHTTP.IbanHandler,
	metricsProvider *metrics.Provider,
) {
	s.registry = registry

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	ibans := v1.Group("/ibans")
	{
		ibans.POST("/validate", ibanHandler.ValidateHandler)
		ibans.POST("/validate/batch", ibanHandler.BatchValidateHandler)
		ibans.POST("/generate", ibanHandler.GenerateHandler)
	}

	countries := v1.Group("/countries")
	{
		countries.GET("", ibanHandler.ListCountriesHandler)
		countries.GET("/:code", ibanHandler.GetCountryHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter before Start")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the registry is loaded and, when configured, the database
// answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.registry != nil && s.registry.Len() > 0 {
		components["registry"] = "ok"
	} else {
		components["registry"] = "error"
		ready = false
	}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness database ping failed", slog.Any("error", err))
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
