// Package log is the lazydrawer debug log.
//
// Messages written before a file is configured are buffered and flushed
// once SetFile is called, so the drawer and config packages can log from
// their first call even though the log path is only known after the config
// has been read. SetFile("") drops the buffer and turns logging off.
package log

import (
	"log"
	"os"
	"sync"
)

// maxBuffered bounds the pre-file buffer; older bytes are dropped first.
const maxBuffered = 64 << 10

// Logf is the printf-style sink handed to packages that log. Its signature
// matches the logf options of the drawer controller and the config watcher.
type Logf func(format string, args ...any)

// DebugLogger handles debug logging to file and/or buffering.
// It implements io.Writer to be compatible with standard log.Logger.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	globalDebugLogger = &DebugLogger{}
	// stdLogger wraps our writer to get timestamps with microseconds, which
	// spring frames at 60 FPS need to be told apart.
	stdLogger = log.New(globalDebugLogger, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer.
// It writes to the file if set, otherwise appends to the bounded buffer.
func (l *DebugLogger) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.discard {
		return len(p), nil
	}

	if l.file != nil {
		n, err = l.file.Write(p)
		// Sync so a crash mid-animation still leaves the last frames on disk.
		_ = l.file.Sync()
		return n, err
	}

	l.buffer = append(l.buffer, p...)
	if over := len(l.buffer) - maxBuffered; over > 0 {
		l.buffer = append([]byte(nil), l.buffer[over:]...)
	}
	return len(p), nil
}

// SetFile sets the debug log file path. Creates the file if it doesn't exist
// and appends otherwise. Buffered messages are written first.
// If path is empty, discards all buffered logs and future logs. When the
// file cannot be opened, logging is disabled and the error returned.
// Calling it again switches files, which a config reload does when
// debug_log changes.
func SetFile(path string) error {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()

	if globalDebugLogger.file != nil {
		_ = globalDebugLogger.file.Close()
		globalDebugLogger.file = nil
	}

	if path == "" {
		globalDebugLogger.discard = true
		globalDebugLogger.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		globalDebugLogger.discard = true
		globalDebugLogger.buffer = nil
		return err
	}

	globalDebugLogger.file = f
	globalDebugLogger.discard = false

	if len(globalDebugLogger.buffer) > 0 {
		_, _ = f.Write(globalDebugLogger.buffer)
		_ = f.Sync()
		globalDebugLogger.buffer = nil
	}

	return nil
}

// Printf writes a formatted debug message via the standard logger.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a debug message via the standard logger.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Named returns a Logf that prefixes every message with component, e.g.
// Named("drawer") writes "[drawer] settled open=true".
func Named(component string) Logf {
	prefix := "[" + component + "] "
	return func(format string, args ...any) {
		stdLogger.Printf(prefix+format, args...)
	}
}

// Close closes the debug log file if open. Later messages are buffered
// again until the next SetFile.
func Close() error {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()

	if globalDebugLogger.file == nil {
		return nil
	}

	err := globalDebugLogger.file.Close()
	globalDebugLogger.file = nil
	return err
}
