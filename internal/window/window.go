package window

import tea "github.com/charmbracelet/bubbletea"

// Window defines the interface for all window content types
type Window interface {
	// Update handles input when focused
	Update(msg tea.Msg) (Window, tea.Cmd)

	// View renders the content area; the desktop draws the frame around it
	View(width, height int) string

	// Focus state
	Focused() bool
	SetFocus(bool)

	// Identity
	Name() string
}

// Themed is implemented by windows that rebuild state when the theme changes
type Themed interface {
	SetStyles(styles Styles)
}
