// Package logging builds the charmbracelet/log logger used across todo.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is attached to every log line.
const Prefix = "todo"

// New creates a text logger writing to w at the named level.
// An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          Prefix,
	}), nil
}

// Open appends to the log file at path, creating parent directories.
// The returned closer must be closed on exit.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := New(file, level)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return logger, file, nil
}

// Discard returns a logger that drops everything. Used by tests and --help paths.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
