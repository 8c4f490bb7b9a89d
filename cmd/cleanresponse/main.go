// Package main provides the entry point for the cleanresponse reference service.
//
// The service exposes a small users API whose every response is a
// standardized envelope built by pkg/response.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cleanresponse/internal/config"
	"cleanresponse/internal/logging"
	"cleanresponse/internal/server"

	"github.com/rs/zerolog/log"
)

// Version information set during build time
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// main is the entry point of the reference service.
//
// The startup sequence is as follows:
//  1. Load configuration
//  2. Initialize logger
//  3. Setup graceful shutdown handling
//  4. Start the main server
func main() {
	cfg := loadConfig()

	logging.Setup(cfg.Log, cfg.App.Name)
	log.Info().
		Str("version", Version).
		Str("commit", GitCommit).
		Str("build_time", BuildTime).
		Str("env", cfg.App.Env).
		Msg("Starting cleanresponse")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg).Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server terminated with error")
	}
}

// loadConfig loads application configuration and terminates the program
// immediately if configuration cannot be loaded.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().
			Err(err).
			Msg("Failed to load configuration")
	}
	return cfg
}
