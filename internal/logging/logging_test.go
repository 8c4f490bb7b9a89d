package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cleanresponse/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupWithWriter(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("JSON output with service field", func(t *testing.T) {
		var buf bytes.Buffer
		SetupWithWriter(config.LogConfig{Level: "info"}, "cleanresponse", &buf)

		log.Info().Str("path", "/api/ping").Msg("request handled")

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Expected JSON log line, got '%s': %v", buf.String(), err)
		}
		if entry["service"] != "cleanresponse" {
			t.Errorf("Expected service 'cleanresponse', got %v", entry["service"])
		}
		if entry["message"] != "request handled" {
			t.Errorf("Expected message 'request handled', got %v", entry["message"])
		}
		if entry["level"] != "info" {
			t.Errorf("Expected level 'info', got %v", entry["level"])
		}
	})

	t.Run("Level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		SetupWithWriter(config.LogConfig{Level: "warn"}, "svc", &buf)

		log.Info().Msg("dropped")
		if buf.Len() != 0 {
			t.Errorf("Expected info to be filtered at warn level, got '%s'", buf.String())
		}

		log.Warn().Msg("kept")
		if !strings.Contains(buf.String(), "kept") {
			t.Errorf("Expected warn entry, got '%s'", buf.String())
		}
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		SetupWithWriter(config.LogConfig{Level: "verbose"}, "svc", &buf)

		if zerolog.GlobalLevel() != zerolog.InfoLevel {
			t.Errorf("Expected info level, got %v", zerolog.GlobalLevel())
		}
	})

	t.Run("Pretty output", func(t *testing.T) {
		var buf bytes.Buffer
		SetupWithWriter(config.LogConfig{Level: "debug", Pretty: true}, "svc", &buf)

		log.Debug().Msg("console line")
		out := buf.String()
		if !strings.Contains(out, "console line") {
			t.Errorf("Expected console output, got '%s'", out)
		}
		if strings.HasPrefix(strings.TrimSpace(out), "{") {
			t.Errorf("Expected non-JSON console output, got '%s'", out)
		}
	})
}
