// Package logging builds the charmbracelet loggers used by the frontends.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravity-dodge/internal/config"
)

// FileName is the log file created under ~/.gravdodge when debugging.
const FileName = "dodge.log"

// New returns a logger for an interactive frontend. Full-screen frontends own
// the terminal, so output goes to ~/.gravdodge/dodge.log when debug is set
// and is discarded otherwise. The returned close func is never nil.
func New(debug bool, prefix string) (*log.Logger, func() error, error) {
	if !debug {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	path := config.UserPath(FileName)
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, fmt.Errorf("logging: cannot resolve home directory")
	}
	return NewFile(path, prefix)
}

// NewFile returns a debug-level logger appending to path.
func NewFile(path, prefix string) (*log.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() error { return nil }, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), func() error { return nil }, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f.Close, nil
}
