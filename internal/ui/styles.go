package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the application
type Styles struct {
	Colors Colors

	// Window styles
	WindowFocused   lipgloss.Style
	WindowUnfocused lipgloss.Style
	HeaderFocused   lipgloss.Style
	HeaderUnfocused lipgloss.Style
	WindowBody      lipgloss.Style

	// Desktop
	Desktop    lipgloss.Style
	Icon       lipgloss.Style
	IconLabel  lipgloss.Style
	CenterLogo lipgloss.Style
	Dock       lipgloss.Style
	DockItem   lipgloss.Style

	// Top bar
	TopBar     lipgloss.Style
	TopBarItem lipgloss.Style
	Brand      lipgloss.Style

	// Menus and modals
	Menu           lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	Modal          lipgloss.Style
	ModalTitle     lipgloss.Style

	// Terminal transcript
	TermPrompt lipgloss.Style
	TermOutput lipgloss.Style
	TermError  lipgloss.Style

	// Content
	Heading lipgloss.Style
	Text    lipgloss.Style
	Link    lipgloss.Style

	// General
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		Colors: c,

		// Window styles; the top edge is drawn by the header
		WindowFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderTop(false).
			BorderForeground(c.BorderFocused),
		WindowUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderTop(false).
			BorderForeground(c.BorderUnfocused),
		HeaderFocused: lipgloss.NewStyle().
			Foreground(c.BorderFocused).
			Bold(true),
		HeaderUnfocused: lipgloss.NewStyle().
			Foreground(c.BorderUnfocused),
		WindowBody: lipgloss.NewStyle().
			Foreground(c.Text),

		// Desktop
		Desktop: lipgloss.NewStyle().
			Foreground(c.Muted),
		Icon: lipgloss.NewStyle().
			Foreground(c.Accent).
			Bold(true),
		IconLabel: lipgloss.NewStyle().
			Foreground(c.Text),
		CenterLogo: lipgloss.NewStyle().
			Foreground(c.Accent),
		Dock: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderUnfocused).
			Padding(0, 1),
		DockItem: lipgloss.NewStyle().
			Foreground(c.Accent).
			Padding(0, 1),

		// Top bar
		TopBar: lipgloss.NewStyle().
			Background(c.Bar).
			Foreground(c.BarText),
		TopBarItem: lipgloss.NewStyle().
			Background(c.Bar).
			Foreground(c.BarText).
			Padding(0, 1),
		Brand: lipgloss.NewStyle().
			Background(c.Bar).
			Foreground(c.Accent).
			Bold(true).
			Padding(0, 1),

		// Menus and modals
		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused),
		MenuItem: lipgloss.NewStyle().
			Foreground(c.Text).
			Padding(0, 1),
		MenuItemActive: lipgloss.NewStyle().
			Foreground(c.Accent).
			Bold(true).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Accent).
			MarginBottom(1),

		// Terminal transcript
		TermPrompt: lipgloss.NewStyle().
			Foreground(c.Accent),
		TermOutput: lipgloss.NewStyle().
			Foreground(c.Text),
		TermError: lipgloss.NewStyle().
			Foreground(c.Error),

		// Content
		Heading: lipgloss.NewStyle().
			Foreground(c.Accent).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(c.Text),
		Link: lipgloss.NewStyle().
			Foreground(c.AccentAlt).
			Underline(true),

		// General
		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)
