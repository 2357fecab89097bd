package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTagsSession(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Info("hello", "k", "v")

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "session="+l.Session)
	assert.Len(t, l.Session, 36)
}

func TestDebugLevel(t *testing.T) {
	var quiet, loud bytes.Buffer
	New(&quiet, false).Debug("hidden")
	New(&loud, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "msg=shown")
}

func TestSetupWritesBranding(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "termfolio.log")
	l, err := Setup(path, false)
	require.NoError(t, err)
	slog.Info("after setup")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, len(Branding)+1)
	for i, b := range Branding {
		assert.Contains(t, lines[i], b)
	}
	assert.Contains(t, lines[len(lines)-1], "after setup")
}
