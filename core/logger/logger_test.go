package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureAll(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetWriterForAll(&buf)
	SetColor(false)
	t.Cleanup(func() {
		SetWriterForAll(os.Stderr)
		SetVerbose(false)
		SetPlainWriter(nil)
	})
	return &buf
}

func TestDebugSuppressedUnlessVerbose(t *testing.T) {
	buf := captureAll(t)

	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "DEBUG shown 2")
}

func TestColorToggle(t *testing.T) {
	buf := captureAll(t)

	Info("plain")
	assert.NotContains(t, buf.String(), ColorBlue)

	SetColor(true)
	Warn("colored")
	assert.Contains(t, buf.String(), ColorYellow+"WARN ")
}

func TestOpenLogFileWritesPlainCopy(t *testing.T) {
	buf := captureAll(t)
	SetColor(true)

	path := filepath.Join(t.TempDir(), "run.log")
	closer, err := OpenLogFile(path)
	require.NoError(t, err)

	Error("write failed for %s", "Live.tsx")
	require.NoError(t, closer.Close())

	Info("after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ERROR write failed for Live.tsx")
	assert.NotContains(t, string(data), "\033[")
	assert.NotContains(t, string(data), "after close")
	assert.Contains(t, buf.String(), ColorRed)
}
