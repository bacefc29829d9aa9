package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("warn message missing from output: %q", out)
	}

	if _, err := New(&buf, "loud"); err == nil {
		t.Error("New() with unknown level should fail")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "t2048.log")

	logger, closeFn, err := Open(path, "debug")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	logger.Debug("move", "dir", "left")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "dir=left") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := Open("", "")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	logger.Info("nowhere")
	if err := closeFn(); err != nil {
		t.Errorf("close of discard logger failed: %v", err)
	}
}

func TestRunClosesOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t2048.log")
	errBoom := errors.New("boom")

	var kept *log.Logger
	err := Run(path, "info", func(logger *log.Logger) error {
		kept = logger
		logger.Info("before failure", "mode", "classic")
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("Run() = %v, want %v", err, errBoom)
	}

	// Writes after Run go to a closed file and are lost.
	kept.Info("after close")

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if !strings.Contains(string(data), "mode=classic") {
		t.Errorf("log file missing entry written before the error: %q", data)
	}
	if strings.Contains(string(data), "after close") {
		t.Errorf("log file still open after Run returned: %q", data)
	}
}

func TestRunOpenError(t *testing.T) {
	called := false
	err := Run("", "loud", func(*log.Logger) error {
		called = true
		return nil
	})
	if err == nil || called {
		t.Errorf("Run() with bad level = %v, called=%v, want error and no call", err, called)
	}
}
