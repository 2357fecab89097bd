package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nested", "prefs.yaml"))
	require.NoError(t, err)
	_, ok := s.Get("portfolioTheme")
	assert.False(t, ok)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("portfolioTheme", "matrix"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	reopened, err := Open(path)
	require.NoError(t, err)
	v, ok := reopened.Get("portfolioTheme")
	require.True(t, ok)
	assert.Equal(t, "matrix", v)
}

func TestFileStoreReloadSeesExternalWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("portfolioTheme: blood-red\n"), 0o600))
	require.NoError(t, s.Reload())
	v, _ := s.Get("portfolioTheme")
	assert.Equal(t, "blood-red", v)
}

func TestFileStoreRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))
	_, err := Open(path)
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	_, ok := m.Get("k")
	assert.False(t, ok)
	require.NoError(t, m.Set("k", "v"))
	v, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
