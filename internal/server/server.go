// Package server provides the main server orchestration for the cleanresponse reference service.
//
// This package coordinates the startup and shutdown of all components:
//   - Storage initialization
//   - HTTP API server management
//   - Graceful shutdown handling
//
// The server follows a structured lifecycle:
//  1. Storage initialization
//  2. HTTP API server launch
//  3. Signal handling and graceful shutdown
package server

import (
	"context"
	"fmt"
	"time"

	"cleanresponse/internal/api"
	"cleanresponse/internal/config"
	"cleanresponse/internal/storage"

	"github.com/rs/zerolog/log"
)

// shutdownTimeout bounds graceful shutdown of the HTTP server.
const shutdownTimeout = 30 * time.Second

// Server represents the main server orchestrator.
//
// It manages the lifecycle of the database storage and the HTTP API server,
// and ensures proper initialization order and graceful shutdown.
type Server struct {
	// cfg holds the application configuration
	cfg *config.Config
}

// New creates a new server instance with the provided configuration.
//
// The server is not started until Start() is called.
func New(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
	}
}

// Start initializes and starts all server components in the correct order.
//
// This method blocks until:
//   - A fatal error occurs during startup
//   - The provided context is cancelled (shutdown signal)
//   - The HTTP server encounters an unrecoverable error
//
// Returns an error if any component fails to start or stop gracefully.
func (s *Server) Start(ctx context.Context) error {
	// Phase 1: Initialize storage
	store, err := storage.New(s.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close storage")
		}
	}()
	log.Info().Str("driver", s.cfg.Storage.Driver).Msg("Storage initialized")

	// Phase 2: Initialize HTTP API server
	httpServer := api.NewServer(s.cfg, store)

	// Buffered so the goroutine never blocks after we stop listening
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- httpServer.Start()
	}()

	// Phase 3: Wait for shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received, starting graceful shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}
