// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"cleanresponse/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger from cfg and returns it.
//
// Output goes to os.Stdout; see SetupWithWriter.
func Setup(cfg config.LogConfig, service string) zerolog.Logger {
	return SetupWithWriter(cfg, service, os.Stdout)
}

// SetupWithWriter configures the global zerolog logger to write to w.
//
// Pretty mode wraps w in a zerolog.ConsoleWriter. Unknown levels fall back to info.
func SetupWithWriter(cfg config.LogConfig, service string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(w).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	log.Logger = logger
	return logger
}
