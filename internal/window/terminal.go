package window

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/termfolio/internal/keys"
	"github.com/kmacinski/termfolio/internal/terminal"
)

// TerminalSubmittedMsg is emitted after a line was run
type TerminalSubmittedMsg struct {
	Input string
}

// TerminalPanel hosts the command engine: a scrolling transcript above an
// input line
type TerminalPanel struct {
	Base
	engine   *terminal.Engine
	input    textinput.Model
	viewport viewport.Model
	ready    bool
	width    int
}

// NewTerminalPanel creates the terminal window
func NewTerminalPanel(name string, engine *terminal.Engine, styles Styles) *TerminalPanel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Placeholder = "type 'help'"

	t := &TerminalPanel{
		Base:   NewBase(name, styles),
		engine: engine,
		input:  ti,
	}
	t.applyStyles()
	return t
}

func (t *TerminalPanel) applyStyles() {
	t.input.TextStyle = t.styles.TermOutput
	t.input.PlaceholderStyle = t.styles.Muted
	t.input.Cursor.Style = t.styles.TermPrompt
}

// SetStyles recolors the transcript and input
func (t *TerminalPanel) SetStyles(styles Styles) {
	t.styles = styles
	t.applyStyles()
	t.refresh()
}

// SetFocus focuses or blurs the input line with the window
func (t *TerminalPanel) SetFocus(focused bool) {
	t.focused = focused
	if focused {
		t.input.Focus()
	} else {
		t.input.Blur()
	}
}

// Input returns the current input line
func (t *TerminalPanel) Input() string {
	return t.input.Value()
}

// Engine returns the command engine
func (t *TerminalPanel) Engine() *terminal.Engine {
	return t.engine
}

// Update handles input
func (t *TerminalPanel) Update(msg tea.Msg) (Window, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		var cmd tea.Cmd
		t.viewport, cmd = t.viewport.Update(msg)
		return t, cmd

	case tea.KeyMsg:
		if !t.focused {
			return t, nil
		}
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			line := t.input.Value()
			t.engine.Submit(line)
			t.input.SetValue("")
			t.refresh()
			t.viewport.GotoBottom()
			return t, func() tea.Msg { return TerminalSubmittedMsg{Input: line} }
		case key.Matches(msg, keys.DefaultKeyMap.Up):
			if v, ok := t.engine.Previous(); ok {
				t.input.SetValue(v)
				t.input.CursorEnd()
			}
			return t, nil
		case key.Matches(msg, keys.DefaultKeyMap.Down):
			t.input.SetValue(t.engine.Next())
			t.input.CursorEnd()
			return t, nil
		case key.Matches(msg, keys.DefaultKeyMap.HalfPgUp):
			t.viewport.SetYOffset(t.viewport.YOffset - t.viewport.Height/2)
			return t, nil
		case key.Matches(msg, keys.DefaultKeyMap.HalfPgDn):
			t.viewport.SetYOffset(t.viewport.YOffset + t.viewport.Height/2)
			return t, nil
		}
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// Refresh re-renders the transcript after the engine changed outside Update
func (t *TerminalPanel) Refresh() {
	t.refresh()
	t.viewport.GotoBottom()
}

func (t *TerminalPanel) refresh() {
	if !t.ready {
		return
	}
	t.viewport.SetContent(t.transcript(t.width))
}

func (t *TerminalPanel) transcript(width int) string {
	var b strings.Builder
	for i, l := range t.engine.Lines() {
		if i > 0 {
			b.WriteByte('\n')
		}
		style := t.styles.TermOutput
		switch l.Kind {
		case terminal.LinePrompt:
			style = t.styles.TermPrompt
		case terminal.LineError:
			style = t.styles.TermError
		}
		b.WriteString(style.Width(width).Render(l.Text))
	}
	return b.String()
}

// View renders the transcript with the prompt line at the bottom
func (t *TerminalPanel) View(width, height int) string {
	if width < 1 || height < 2 {
		return ""
	}
	vh := height - 1

	if !t.ready {
		t.viewport = viewport.New(width, vh)
		t.width = width
		t.ready = true
		t.refresh()
		t.viewport.GotoBottom()
	} else if t.viewport.Width != width || t.viewport.Height != vh {
		atBottom := t.viewport.AtBottom()
		t.viewport.Width = width
		t.viewport.Height = vh
		t.width = width
		t.refresh()
		if atBottom {
			t.viewport.GotoBottom()
		}
	}

	prompt := t.styles.TermPrompt.Render(t.engine.Prompt() + " ")
	t.input.Width = max(1, width-lipgloss.Width(prompt)-1)
	return t.viewport.View() + "\n" + prompt + t.input.View()
}
