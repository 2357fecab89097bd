package theme

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmacinski/termfolio/internal/prefs"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestPalettesAreValidHex(t *testing.T) {
	for _, th := range All() {
		t.Run(th.Name, func(t *testing.T) {
			c := th.Colors
			for _, col := range []string{
				string(c.Accent), string(c.AccentAlt), string(c.Desktop), string(c.Surface),
				string(c.Text), string(c.Muted), string(c.BorderFocused), string(c.BorderUnfocused),
				string(c.Bar), string(c.BarText), string(c.Error),
			} {
				assert.Regexp(t, hexColorRegex, col)
			}
		})
	}
}

func TestDefaultIsInSet(t *testing.T) {
	_, ok := Lookup(Default)
	require.True(t, ok)
	assert.Equal(t, Default, Names()[0])
}

func TestSwitcherDefaultsWhenAbsent(t *testing.T) {
	s := NewSwitcher(prefs.NewMemory())
	assert.Equal(t, Default, s.Current().Name)
}

func TestSwitcherIgnoresUnknownStoredValue(t *testing.T) {
	store := prefs.NewMemory()
	require.NoError(t, store.Set(PrefKey, "hot-pink"))
	s := NewSwitcher(store)
	assert.Equal(t, Default, s.Current().Name)
}

func TestSwitcherSelectPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	store, err := prefs.Open(path)
	require.NoError(t, err)

	s := NewSwitcher(store)
	require.NoError(t, s.Select("cyber-blue"))
	assert.Equal(t, "cyber-blue", s.Current().Name)

	reopened, err := prefs.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "cyber-blue", NewSwitcher(reopened).Current().Name)
}

func TestSwitcherSelectUnknown(t *testing.T) {
	store := prefs.NewMemory()
	s := NewSwitcher(store)
	err := s.Select("hot-pink")
	require.True(t, errors.Is(err, ErrUnknownTheme))
	assert.Equal(t, Default, s.Current().Name)
	_, stored := store.Get(PrefKey)
	assert.False(t, stored)
}

func TestSwitcherReload(t *testing.T) {
	store := prefs.NewMemory()
	s := NewSwitcher(store)
	assert.False(t, s.Reload())

	require.NoError(t, store.Set(PrefKey, "matrix"))
	assert.True(t, s.Reload())
	assert.Equal(t, "matrix", s.Current().Name)
	assert.Equal(t, s.Current().Colors.Accent, s.Styles().Colors.Accent)
}
