// Package logging builds the charmbracelet/log logger used across the game.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the given level.
// An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           lvl,
	}), nil
}

// Open returns a logger appending to path, creating parent directories.
// An empty path yields a logger that discards everything, which keeps the
// alternate screen clean while the TUI runs. The returned close func is
// never nil.
func Open(path, level string) (*log.Logger, func() error, error) {
	nop := func() error { return nil }

	if path == "" {
		logger, err := New(io.Discard, level)
		return logger, nop, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nop, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nop, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nop, err
	}
	return logger, f.Close, nil
}

// Run opens the log as Open does, calls fn with it and closes the log
// before returning, also when fn fails. Errors from fn and from closing
// are joined.
func Run(path, level string, fn func(*log.Logger) error) error {
	logger, closeLog, err := Open(path, level)
	if err != nil {
		return err
	}
	fnErr := fn(logger)
	if closeErr := closeLog(); closeErr != nil {
		return errors.Join(fnErr, fmt.Errorf("logging: close %s: %w", path, closeErr))
	}
	return fnErr
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
