package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.yaml")

	var calls atomic.Int32
	w, err := New(50*time.Millisecond, path, func() { calls.Add(1) })
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("portfolioTheme: matrix\n"), 0o600))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.yaml")

	var calls atomic.Int32
	w, err := New(20*time.Millisecond, path, func() { calls.Add(1) })
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcherSeesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.yaml")

	var calls atomic.Int32
	w, err := New(20*time.Millisecond, path, func() { calls.Add(1) })
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("portfolioTheme: cyber-blue\n"), 0o600))
	require.NoError(t, os.Rename(tmp, path))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New(time.Millisecond, filepath.Join(t.TempDir(), "prefs.yaml"), func() {})
	require.NoError(t, err)
	w.Start()
	w.Stop()
	assert.NotPanics(t, w.Stop)
}
