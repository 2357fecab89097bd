package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kmacinski/termfolio/internal/desktop"
	"github.com/kmacinski/termfolio/internal/ui"
)

// Control is a part of the window header
type Control int

const (
	ControlNone Control = iota
	ControlTitle
	ControlMinimize
	ControlMaximize
	ControlClose
)

func (c Control) String() string {
	switch c {
	case ControlTitle:
		return "title"
	case ControlMinimize:
		return "minimize"
	case ControlMaximize:
		return "maximize"
	case ControlClose:
		return "close"
	default:
		return "none"
	}
}

// Buttons render right-aligned in the header, each three cells wide
const (
	buttonMinimize = "[-]"
	buttonMaximize = "[□]"
	buttonRestore  = "[▫]"
	buttonClose    = "[x]"
	buttonsWidth   = 9
)

// MinFrameWidth is the narrowest frame that still fits its buttons
const MinFrameWidth = buttonsWidth + 6

// ContentSize returns the body area inside a frame of the given size
func ContentSize(width, height int) (int, int) {
	return max(0, width-2), max(0, height-2)
}

// Frame draws window chrome around body: a header row holding the title and
// the minimize/maximize/close buttons, then a bordered body.
func Frame(styles ui.Styles, title, body string, width, height int, focused, maximized bool) string {
	width = max(width, MinFrameWidth)
	height = max(height, 3)

	border, header := styles.WindowUnfocused, styles.HeaderUnfocused
	if focused {
		border, header = styles.WindowFocused, styles.HeaderFocused
	}

	maxButton := buttonMaximize
	if maximized {
		maxButton = buttonRestore
	}
	buttons := buttonMinimize + maxButton + buttonClose

	// ╭ title ───── [-][□][x]╮
	titleRoom := width - buttonsWidth - 5
	title = ansi.Truncate(title, titleRoom, "…")
	fill := width - ansi.StringWidth(title) - buttonsWidth - 5
	top := "╭ " + title + " " + strings.Repeat("─", max(0, fill)) + " " + buttons + "╮"

	cw, ch := ContentSize(width, height)
	lines := Canvas(body, cw, ch)
	framed := border.
		Width(cw).
		Height(ch).
		Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header.Render(top), framed)
}

// HeaderHit reports which header control lies under (x, y) for a frame placed
// at g. It returns ControlNone when the cell is not on the header row.
func HeaderHit(g desktop.Geometry, x, y int) Control {
	width := max(g.Width, MinFrameWidth)
	if y != g.Top || x < g.Left || x >= g.Left+width {
		return ControlNone
	}
	col := x - g.Left
	start := width - 1 - buttonsWidth
	switch {
	case col >= start && col < start+3:
		return ControlMinimize
	case col >= start+3 && col < start+6:
		return ControlMaximize
	case col >= start+6 && col < start+9:
		return ControlClose
	default:
		return ControlTitle
	}
}

// IsButton reports whether c is one of the header buttons
func (c Control) IsButton() bool {
	return c == ControlMinimize || c == ControlMaximize || c == ControlClose
}
