// Package logging configures slog for a program that owns the terminal:
// records go to a file, tagged with a per-run session ID.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Branding is logged once at startup
var Branding = []string{
	"termfolio: portfolio desktop",
	"Security workstation online",
	"Type 'help' in the terminal window to get started",
}

// DefaultPath returns <user cache dir>/termfolio/termfolio.log
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("user cache dir: %w", err)
	}
	return filepath.Join(dir, "termfolio", "termfolio.log"), nil
}

// Logger wraps the configured slog logger and its sink
type Logger struct {
	*slog.Logger
	Session string
	closer  io.Closer
}

// Close releases the log file
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// New builds a logger writing text records to w
func New(w io.Writer, debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	session := uuid.NewString()
	return &Logger{
		Logger:  slog.New(handler).With("session", session),
		Session: session,
	}
}

// Setup opens path for appending (DefaultPath when empty), installs the
// logger as slog's default and logs the branding lines.
func Setup(path string, debug bool) (*Logger, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := New(f, debug)
	l.closer = f
	slog.SetDefault(l.Logger)

	for _, line := range Branding {
		l.Info(line)
	}
	return l, nil
}
