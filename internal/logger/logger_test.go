package logger

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookup.log")
	l := New(path, 0, "test")

	l.Logr().Info("hello", "items", 3)
	l.Logr().V(1).Info("too verbose")
	require.NoError(t, l.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "hello", lines[0][MessageKey])
	assert.Equal(t, "test", lines[0][VersionKey])
	assert.EqualValues(t, 3, lines[0]["items"])
	assert.Contains(t, lines[0], TimeStampKey)
}

func TestVerbosityEnablesVLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookup.log")
	l := New(path, 1, "test")

	l.Logr().V(1).Info("transition")
	l.Logr().V(2).Info("noise")
	require.NoError(t, l.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "transition", lines[0][MessageKey])
}

func TestEmptyPathDiscards(t *testing.T) {
	l := New("", 5, "test")
	assert.False(t, l.Logr().Enabled())
	assert.NotPanics(t, func() { l.Sync() })
	assert.NoError(t, l.Close())
}

func TestContextRoundTrip(t *testing.T) {
	assert.False(t, FromContext(context.Background()).Enabled())

	l := New(filepath.Join(t.TempDir(), "lookup.log"), 0, "test")
	defer l.Close()

	ctx := WithLogger(context.Background(), l.Logr())
	assert.True(t, FromContext(ctx).Enabled())
	assert.Equal(t, l.Logr(), FromContext(ctx))
}

func TestIsIgnorableSyncError(t *testing.T) {
	assert.True(t, isIgnorableSyncError(&os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}))
	assert.True(t, isIgnorableSyncError(syscall.ENOTTY))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}
