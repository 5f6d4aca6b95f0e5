// Package logging configures the global zerolog logger. The TUI owns the
// terminal, so interactive runs log to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at the file at path, creating parent
// directories as needed. The returned closer flushes and closes the file.
func Setup(level, path string) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	apply(lvl, f)
	return f, nil
}

// SetupConsole logs human-readable lines to w. Used by non-interactive
// commands.
func SetupConsole(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	apply(lvl, zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	return nil
}

// Discard silences the global logger.
func Discard() {
	log.Logger = zerolog.Nop()
}

func apply(lvl zerolog.Level, w io.Writer) {
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
