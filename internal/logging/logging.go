// Package logging builds the zerolog logger shared by every component.
// The TUI owns the terminal, so log lines go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the level and destination of log output
type Options struct {
	Level string
	File  string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel parses a level name, falling back to info
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Setup creates the application logger. When the log file cannot be opened
// the returned logger discards everything and the error says why; the
// logger and closer are always usable.
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl := ParseLevel(opts.Level)

	if opts.File == "" {
		return New(io.Discard, lvl), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return New(io.Discard, lvl), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return New(io.Discard, lvl), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(f, lvl), f, nil
}

// New creates a timestamped logger on w
func New(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Component returns a child logger tagged with the component name
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
