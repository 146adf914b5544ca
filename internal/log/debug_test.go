package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDebugLogger(t *testing.T) {
	t.Helper()

	globalDebugLogger.mu.Lock()
	prevFile := globalDebugLogger.file
	prevBuffer := append([]byte(nil), globalDebugLogger.buffer...)
	prevDiscard := globalDebugLogger.discard
	globalDebugLogger.file = nil
	globalDebugLogger.buffer = nil
	globalDebugLogger.discard = false
	globalDebugLogger.mu.Unlock()

	t.Cleanup(func() {
		globalDebugLogger.mu.Lock()
		if globalDebugLogger.file != nil {
			_ = globalDebugLogger.file.Close()
		}
		globalDebugLogger.file = prevFile
		globalDebugLogger.buffer = prevBuffer
		globalDebugLogger.discard = prevDiscard
		globalDebugLogger.mu.Unlock()
	})
}

func buffered() string {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()
	return string(globalDebugLogger.buffer)
}

func TestBufferFlushedToFile(t *testing.T) {
	resetDebugLogger(t)

	Printf("before %d", 1)
	Named("drawer")("settled open=%t", true)
	assert.Contains(t, buffered(), "[drawer] settled open=true")

	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, SetFile(path))
	Println("after")
	require.NoError(t, Close())

	data, err := os.ReadFile(path) //nolint:gosec
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "before 1")
	assert.Contains(t, text, "[drawer] settled open=true")
	assert.Contains(t, text, "after")
	assert.Empty(t, buffered())
}

func TestBufferIsBounded(t *testing.T) {
	resetDebugLogger(t)

	line := strings.Repeat("x", 1024)
	for range 100 {
		Println(line)
	}
	assert.LessOrEqual(t, len(buffered()), maxBuffered)
}

func TestEmptyPathDiscards(t *testing.T) {
	resetDebugLogger(t)

	Printf("dropped")
	require.NoError(t, SetFile(""))
	Printf("also dropped")
	assert.Empty(t, buffered())
}

func TestSetFileFailureDiscardsLogs(t *testing.T) {
	resetDebugLogger(t)

	unwritableDir := t.TempDir()
	require.NoError(t, os.Chmod(unwritableDir, 0o500)) //nolint:gosec
	t.Cleanup(func() {
		_ = os.Chmod(unwritableDir, 0o700) //nolint:gosec
	})
	if os.Geteuid() == 0 {
		t.Skip("root can write to read-only directories")
	}

	logPath := filepath.Join(unwritableDir, "debug.log")
	require.Error(t, SetFile(logPath))

	Printf("should be discarded")
	assert.Empty(t, buffered())
}
