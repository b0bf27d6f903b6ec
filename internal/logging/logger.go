package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultService = "scdc"

// Config captures options for building a logger.
type Config struct {
	Level     string    // optional log level ("debug", "info", etc.)
	Output    io.Writer // optional writer (defaults to os.Stderr)
	Component string    // optional component attached to every entry
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(raw string) zerolog.Level {
	if strings.TrimSpace(raw) == "" {
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

// New returns a JSON-lines logger. Each call builds an independent logger so
// commands can write to their own stderr.
func New(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	ctx := zerolog.New(writer).Level(ParseLevel(cfg.Level)).With().
		Timestamp().
		Str(FieldService, defaultService)
	if cfg.Component != "" {
		ctx = ctx.Str(FieldComponent, cfg.Component)
	}

	return ctx.Logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str(FieldComponent, component).Logger()
}
