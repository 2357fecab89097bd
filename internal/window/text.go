package window

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/termfolio/internal/keys"
	"github.com/kmacinski/termfolio/internal/profile"
)

// TextPanel shows static sections of a profile panel with scrolling
type TextPanel struct {
	Base
	sections []profile.Section
	lines    []string
	offset   int
	width    int
	height   int
}

// NewTextPanel creates a text window for a profile panel
func NewTextPanel(panel profile.Panel, styles Styles) *TextPanel {
	return &TextPanel{
		Base:     NewBase(panel.ID, styles),
		sections: panel.Sections,
	}
}

// Update handles input
func (t *TextPanel) Update(msg tea.Msg) (Window, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			t.scroll(-1)
		case tea.MouseButtonWheelDown:
			t.scroll(1)
		}
		return t, nil
	case tea.KeyMsg:
		if !t.focused {
			return t, nil
		}
		page := max(1, t.height/2)
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Down):
			t.scroll(1)
		case key.Matches(msg, keys.DefaultKeyMap.Up):
			t.scroll(-1)
		case key.Matches(msg, keys.DefaultKeyMap.HalfPgDn):
			t.scroll(page)
		case key.Matches(msg, keys.DefaultKeyMap.HalfPgUp):
			t.scroll(-page)
		case key.Matches(msg, keys.DefaultKeyMap.GotoTop):
			t.offset = 0
		case key.Matches(msg, keys.DefaultKeyMap.GotoBot):
			t.offset = t.maxOffset()
		}
	}
	return t, nil
}

// Offset returns the first visible line
func (t *TextPanel) Offset() int {
	return t.offset
}

func (t *TextPanel) scroll(delta int) {
	t.offset = min(max(0, t.offset+delta), t.maxOffset())
}

func (t *TextPanel) maxOffset() int {
	return max(0, len(t.lines)-t.rows())
}

// rows is the number of content lines shown; one row goes to the position
// indicator when the content overflows
func (t *TextPanel) rows() int {
	if len(t.lines) > t.height {
		return max(1, t.height-1)
	}
	return t.height
}

// View renders the visible slice of the wrapped content
func (t *TextPanel) View(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	if width != t.width || t.lines == nil {
		t.lines = t.render(width)
	}
	t.width, t.height = width, height
	t.offset = min(t.offset, t.maxOffset())

	end := min(len(t.lines), t.offset+t.rows())
	visible := append([]string(nil), t.lines[t.offset:end]...)

	if len(t.lines) > height {
		pos := t.styles.Muted.Render(fmt.Sprintf("%d/%d", end, len(t.lines)))
		visible = append(visible, lipgloss.PlaceHorizontal(width, lipgloss.Right, pos))
	}
	return strings.Join(visible, "\n")
}

func (t *TextPanel) render(width int) []string {
	var lines []string
	for i, s := range t.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if s.Heading != "" {
			lines = append(lines, t.styles.Heading.Render(s.Heading))
		}
		for _, l := range s.Lines {
			wrapped := t.styles.Text.Width(width).Render(l)
			lines = append(lines, strings.Split(wrapped, "\n")...)
		}
	}
	return lines
}

// SetStyles re-renders content in the new palette
func (t *TextPanel) SetStyles(styles Styles) {
	t.styles = styles
	t.lines = nil
}
