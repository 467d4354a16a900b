// Package logging configures the global zerolog logger. The terminal belongs
// to the UI, so log records go to a file.
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

// DefaultPath returns the log file location inside the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gridsnake", "gridsnake.log"), nil
}

// Setup points the global logger at path and returns a closer for the file.
// An empty path selects DefaultPath.
func Setup(path string, debug bool) (io.Closer, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	Configure(f, debug)
	return f, nil
}

// Configure sends global log output to w.
func Configure(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Str("app", "gridsnake").Logger()
}

// Discard silences the global logger.
func Discard() {
	log.Logger = zerolog.Nop()
}
