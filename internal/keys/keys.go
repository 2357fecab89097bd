package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	HalfPgUp key.Binding
	HalfPgDn key.Binding
	GotoTop  key.Binding
	GotoBot  key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Escape   key.Binding

	// Window actions
	Close    key.Binding
	Minimize key.Binding
	Maximize key.Binding
	Open     key.Binding

	// Desktop
	ThemeMenu key.Binding
	Power     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default keybindings
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "scroll / history"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↑/↓", "scroll / history"),
	),
	HalfPgUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("PgUp/PgDn", "page"),
	),
	HalfPgDn: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("PgUp/PgDn", "page"),
	),
	GotoTop: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("Home/End", "top/bottom"),
	),
	GotoBot: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("Home/End", "top/bottom"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next window"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev window"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run / confirm"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close menu/dialog"),
	),
	Close: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("C-w", "close window"),
	),
	Minimize: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("C-n", "minimize window"),
	),
	Maximize: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("C-f", "maximize / restore"),
	),
	Open: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("C-o", "open terminal"),
	),
	ThemeMenu: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "theme menu"),
	),
	Power: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("C-p", "power off"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

// HelpBindings returns the keybindings to display in help
func HelpBindings() []key.Binding {
	return []key.Binding{
		DefaultKeyMap.Tab,
		DefaultKeyMap.ShiftTab,
		DefaultKeyMap.Up,
		DefaultKeyMap.HalfPgUp,
		DefaultKeyMap.GotoTop,
		DefaultKeyMap.Enter,
		DefaultKeyMap.Escape,
		DefaultKeyMap.Close,
		DefaultKeyMap.Minimize,
		DefaultKeyMap.Maximize,
		DefaultKeyMap.Open,
		DefaultKeyMap.ThemeMenu,
		DefaultKeyMap.Power,
		DefaultKeyMap.Help,
		DefaultKeyMap.Quit,
	}
}
