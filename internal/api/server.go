// Package api provides the HTTP API of the cleanresponse reference service.
// This package implements a RESTful API using the Gin framework; every
// endpoint answers with a response envelope from pkg/response.
//
// Example usage:
//
//	server := api.NewServer(cfg, storage)
//	err := server.Start()
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cleanresponse/internal/api/types"
	"cleanresponse/internal/config"
	"cleanresponse/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Server represents the HTTP API server.
type Server struct {
	config     config.ServerConfig
	production bool
	storage    *storage.Storage
	router     *gin.Engine
	server     *http.Server
}

// NewServer creates a new HTTP API server instance.
//
// Parameters:
//   - cfg: Application configuration (server section and environment)
//   - storage: Storage instance for database operations (may be nil in tests)
//
// Returns:
//   - *Server: Initialized server instance
func NewServer(cfg *config.Config, storage *storage.Storage) *Server {
	gin.SetMode(gin.ReleaseMode)
	types.UseJSONFieldNames()

	server := &Server{
		config:     cfg.Server,
		production: cfg.App.IsProduction(),
		storage:    storage,
		router:     gin.New(),
	}

	server.setupMiddleware()
	server.setupRoutes()

	server.server = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// Handler returns the root HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and begins listening for requests.
//
// Returns:
//   - error: Any error that occurred during server startup
func (s *Server) Start() error {
	log.Info().Str("addr", s.config.Addr).Msg("Starting HTTP server")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
//
// Parameters:
//   - ctx: Context for shutdown timeout
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// setupMiddleware configures middleware for the Gin router.
func (s *Server) setupMiddleware() {
	// Request ID middleware (should be first)
	s.router.Use(RequestID())

	// Access logging, outside recovery so recovered panics are logged with their 500
	s.router.Use(LoggerMiddleware())

	// Panic recovery producing 500 envelopes
	s.router.Use(PanicRecovery(s.production))

	// Request timeout middleware
	s.router.Use(TimeoutMiddleware(s.config.RequestTimeout))

	// Security headers
	s.router.Use(SecurityHeaders())
}
