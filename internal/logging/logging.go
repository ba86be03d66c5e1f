// Package logging builds the diagnostics logger. The terminal belongs to the
// chart, so records go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Disabled as a path turns logging off.
const Disabled = "-"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New opens (or creates) the log file at path and returns a logger writing to
// it. Debug lowers the level from info to debug. An empty path or Disabled
// returns a no-op logger. The closer must be closed on exit.
func New(path string, debug bool) (zerolog.Logger, io.Closer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == Disabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	return newLogger(file, debug), file, nil
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
