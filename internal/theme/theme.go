// Package theme holds the closed set of desktop themes and the switcher that
// persists the selected one.
package theme

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/termfolio/internal/prefs"
	"github.com/kmacinski/termfolio/internal/ui"
)

// PrefKey is the preference key holding the selected theme
const PrefKey = "portfolioTheme"

// Default is applied when no preference is stored
const Default = "parrot-green"

// ErrUnknownTheme is returned when selecting a name outside the theme set
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is a named palette
type Theme struct {
	Name   string
	Label  string
	Colors ui.Colors
}

var themes = []Theme{
	{Name: "parrot-green", Label: "Parrot Green", Colors: ui.DefaultColors},
	{Name: "matrix", Label: "Matrix", Colors: ui.Colors{
		Accent:          lipgloss.Color("#00ff41"),
		AccentAlt:       lipgloss.Color("#008f11"),
		Desktop:         lipgloss.Color("#0d0208"),
		Surface:         lipgloss.Color("#000000"),
		Text:            lipgloss.Color("#c8ffd0"),
		Muted:           lipgloss.Color("#3b6b45"),
		BorderFocused:   lipgloss.Color("#00ff41"),
		BorderUnfocused: lipgloss.Color("#1f3d26"),
		Bar:             lipgloss.Color("#031a08"),
		BarText:         lipgloss.Color("#a8f5b8"),
		Error:           lipgloss.Color("#ff5555"),
	}},
	{Name: "cyber-blue", Label: "Cyber Blue", Colors: ui.Colors{
		Accent:          lipgloss.Color("#00b4d8"),
		AccentAlt:       lipgloss.Color("#90e0ef"),
		Desktop:         lipgloss.Color("#03071e"),
		Surface:         lipgloss.Color("#0a1128"),
		Text:            lipgloss.Color("#caf0f8"),
		Muted:           lipgloss.Color("#4a6585"),
		BorderFocused:   lipgloss.Color("#00b4d8"),
		BorderUnfocused: lipgloss.Color("#23395b"),
		Bar:             lipgloss.Color("#001233"),
		BarText:         lipgloss.Color("#ade8f4"),
		Error:           lipgloss.Color("#ff6b6b"),
	}},
	{Name: "blood-red", Label: "Blood Red", Colors: ui.Colors{
		Accent:          lipgloss.Color("#e63946"),
		AccentAlt:       lipgloss.Color("#f1a208"),
		Desktop:         lipgloss.Color("#120506"),
		Surface:         lipgloss.Color("#1b0a0c"),
		Text:            lipgloss.Color("#f8e1e3"),
		Muted:           lipgloss.Color("#7a4a4f"),
		BorderFocused:   lipgloss.Color("#e63946"),
		BorderUnfocused: lipgloss.Color("#4a2024"),
		Bar:             lipgloss.Color("#2a0a0e"),
		BarText:         lipgloss.Color("#f3c4c8"),
		Error:           lipgloss.Color("#ffb703"),
	}},
	{Name: "midnight-purple", Label: "Midnight Purple", Colors: ui.Colors{
		Accent:          lipgloss.Color("#b388ff"),
		AccentAlt:       lipgloss.Color("#ff79c6"),
		Desktop:         lipgloss.Color("#0f0a1e"),
		Surface:         lipgloss.Color("#17112b"),
		Text:            lipgloss.Color("#e6dcff"),
		Muted:           lipgloss.Color("#6a5d8f"),
		BorderFocused:   lipgloss.Color("#b388ff"),
		BorderUnfocused: lipgloss.Color("#3a2f5c"),
		Bar:             lipgloss.Color("#1d1436"),
		BarText:         lipgloss.Color("#d5c8ff"),
		Error:           lipgloss.Color("#ff5c8a"),
	}},
}

// All returns every theme in menu order
func All() []Theme {
	return slices.Clone(themes)
}

// Names returns every theme name in menu order
func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the theme called name
func Lookup(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Switcher tracks the current theme and persists selections
type Switcher struct {
	store prefs.Store

	mu      sync.Mutex
	current Theme
}

// NewSwitcher applies the stored theme, or Default when absent or unknown
func NewSwitcher(store prefs.Store) *Switcher {
	s := &Switcher{store: store}
	s.current = s.stored()
	return s
}

// Current returns the active theme
func (s *Switcher) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Styles returns styles built from the active palette
func (s *Switcher) Styles() ui.Styles {
	return ui.NewStyles(s.Current().Colors)
}

// Select activates name and persists it
func (s *Switcher) Select(name string) error {
	t, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	s.mu.Lock()
	s.current = t
	s.mu.Unlock()

	if err := s.store.Set(PrefKey, name); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Reload re-applies the stored theme and reports whether it changed
func (s *Switcher) Reload() bool {
	t := s.stored()
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := t.Name != s.current.Name
	s.current = t
	return changed
}

func (s *Switcher) stored() Theme {
	if name, ok := s.store.Get(PrefKey); ok {
		if t, ok := Lookup(name); ok {
			return t
		}
	}
	t, _ := Lookup(Default)
	return t
}
