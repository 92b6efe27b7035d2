package infra

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"wanderly/internal/config"
)

const serviceName = "wanderly-api"

// NewLogger builds the process logger. LOG_FORMAT=console switches to a
// human readable writer for local runs.
func NewLogger(cfg *config.Config) zerolog.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	w := out
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("provider", cfg.AIProvider).
		Logger()
}
