package terminal

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/dustin/go-humanize"
)

const sudoPrefix = "sudo "

// WindowOpener opens a desktop window by ID
type WindowOpener interface {
	Open(id string)
}

// LinkOpener opens an external URL
type LinkOpener interface {
	OpenURL(url string) error
}

// Engine parses submitted lines, dispatches them to the command registry
// and keeps the transcript and input history.
type Engine struct {
	content  Content
	commands map[string]Command

	transcript []Line
	history    History

	windows WindowOpener
	links   LinkOpener

	started time.Time
	now     func() time.Time
	vars    map[string]func() string
	log     *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces time.Now, used for the neofetch uptime
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithVar makes "{name}" in neofetch output expand to fn()
func WithVar(name string, fn func() string) Option {
	return func(e *Engine) { e.vars[name] = fn }
}

// WithLogger sets the logger used for dispatch records
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine creates an engine whose transcript starts with the banner
func NewEngine(content Content, windows WindowOpener, links LinkOpener, opts ...Option) *Engine {
	e := &Engine{
		content:  content,
		commands: Commands(content),
		windows:  windows,
		links:    links,
		now:      time.Now,
		vars:     map[string]func() string{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.started = e.now()
	e.transcript = e.Banner()
	return e
}

// Banner returns the fixed lines that clear leaves behind
func (e *Engine) Banner() []Line {
	lines := make([]Line, 0, len(e.content.Banner))
	for _, t := range e.content.Banner {
		lines = append(lines, Prompt(t))
	}
	return lines
}

// Prompt returns the "user@host:~$" prompt
func (e *Engine) Prompt() string {
	return e.content.Prompt()
}

// Lines returns the current transcript
func (e *Engine) Lines() []Line {
	return append([]Line(nil), e.transcript...)
}

// History returns the input history
func (e *Engine) History() *History {
	return &e.history
}

// Lookup returns a registered command
func (e *Engine) Lookup(name string) (Command, bool) {
	cmd, ok := e.commands[name]
	return cmd, ok
}

// Previous recalls the previous history entry
func (e *Engine) Previous() (string, bool) {
	return e.history.Previous()
}

// Next recalls the next history entry, or "" past the newest one
func (e *Engine) Next() string {
	return e.history.Next()
}

// Submit handles one accepted input line
func (e *Engine) Submit(input string) {
	line := strings.ToLower(strings.TrimSpace(input))
	if line == "" {
		return
	}

	e.history.Add(line)
	e.append(Prompt(fmt.Sprintf("%s %s", e.content.Prompt(), line)))

	if cmd, ok := e.commands[line]; ok {
		e.log.Debug("terminal command", "command", line)
		e.execute(cmd)
		return
	}

	if rest, ok := strings.CutPrefix(line, sudoPrefix); ok {
		cmd, found := e.commands[rest]
		if !found {
			e.log.Debug("terminal sudo miss", "command", rest)
			e.append(Error(fmt.Sprintf("Command not found: %s", rest)))
			return
		}
		e.log.Debug("terminal sudo command", "command", rest)
		e.append(Output(fmt.Sprintf("[sudo] password for %s: ********", e.content.User)))
		e.execute(cmd)
		return
	}

	e.log.Debug("terminal command not found", "command", line)
	msg := fmt.Sprintf("Command not found: %s.", line)
	if s, ok := e.suggest(line); ok {
		msg += fmt.Sprintf(" Did you mean '%s'?", s)
	}
	e.append(Error(msg + " Type 'help' for available commands."))
}

func (e *Engine) execute(cmd Command) {
	switch cmd.Action {
	case ActionClear:
		e.transcript = e.Banner()
		return
	case ActionOpenWindow:
		if e.windows != nil {
			e.windows.Open(cmd.Target)
		}
	case ActionOpenLink:
		if e.links == nil {
			break
		}
		if err := e.links.OpenURL(cmd.Target); err != nil {
			e.log.Warn("open link", "url", cmd.Target, "err", err)
			e.append(cmd.Output...)
			e.append(Error(fmt.Sprintf("Could not open %s: %v", cmd.Target, err)))
			return
		}
	}

	if cmd.Name == "neofetch" {
		e.append(e.expand(cmd.Output)...)
		return
	}
	e.append(cmd.Output...)
}

func (e *Engine) expand(lines []Line) []Line {
	pairs := []string{"{uptime}", strings.TrimSpace(humanize.RelTime(e.started, e.now(), "", ""))}
	for name, fn := range e.vars {
		pairs = append(pairs, "{"+name+"}", fn())
	}
	r := strings.NewReplacer(pairs...)

	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{Kind: l.Kind, Text: r.Replace(l.Text)}
	}
	return out
}

// suggest returns the closest visible command within two edits
func (e *Engine) suggest(input string) (string, bool) {
	best, bestDist := "", 3
	for _, name := range Names {
		if e.commands[name].Summary == "" {
			continue
		}
		d := levenshtein.ComputeDistance(input, name)
		if d < bestDist && d < len(name) {
			best, bestDist = name, d
		}
	}
	return best, best != ""
}

func (e *Engine) append(lines ...Line) {
	e.transcript = append(e.transcript, lines...)
}
