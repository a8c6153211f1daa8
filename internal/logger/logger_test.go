package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "numberrush.log")

	l, err := New(path, false)
	require.NoError(t, err)
	l.Info("game started")
	l.Debug("hidden")
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `"msg":"game started"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numberrush.log")

	l, err := New(path, true)
	require.NoError(t, err)
	l.Debug("operand revealed")
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "operand revealed"))
}

func TestNewOrNop_FallsBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	l := NewOrNop(filepath.Join(blocker, "sub", "x.log"))
	require.NotNil(t, l)
	l.Info("dropped")
}
