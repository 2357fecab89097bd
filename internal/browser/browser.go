// Package browser opens external links with the system opener and falls
// back to the clipboard when no opener can run.
package browser

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// ErrCopied reports that the URL was copied to the clipboard instead of opened
var ErrCopied = errors.New("copied to clipboard")

// Runner starts an external command without waiting for it
type Runner func(name string, args ...string) error

// Opener implements terminal.LinkOpener
type Opener struct {
	goos string
	run  Runner
	copy func(string) error
	log  *slog.Logger
}

// Option configures an Opener
type Option func(*Opener)

// WithRunner replaces process spawning
func WithRunner(r Runner) Option {
	return func(o *Opener) { o.run = r }
}

// WithClipboard replaces clipboard.WriteAll
func WithClipboard(fn func(string) error) Option {
	return func(o *Opener) { o.copy = fn }
}

// WithOS overrides runtime.GOOS when picking the opener command
func WithOS(goos string) Option {
	return func(o *Opener) { o.goos = goos }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(o *Opener) { o.log = l }
}

// New creates an Opener for the current platform
func New(opts ...Option) *Opener {
	o := &Opener{
		goos: runtime.GOOS,
		run:  start,
		copy: clipboard.WriteAll,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

// Command returns the opener invocation for url
func (o *Opener) Command(url string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// OpenURL opens url in a new browser context. When the opener fails the URL
// is copied to the clipboard and ErrCopied is returned so the caller can say so.
func (o *Opener) OpenURL(url string) error {
	name, args := o.Command(url)
	err := o.run(name, args...)
	if err == nil {
		o.log.Info("opened link", "url", url, "opener", name)
		return nil
	}
	o.log.Warn("opener failed", "opener", name, "err", err)

	if cerr := o.copy(url); cerr != nil {
		return fmt.Errorf("open %s: %w (clipboard: %v)", name, err, cerr)
	}
	return ErrCopied
}
