package core

import (
	"fmt"
	"io"
	"sync"
)

// LogLevel gates which diagnostics reach the sink.
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogError
)

// Logger is a minimal leveled sink for shell diagnostics. The shell is
// configured with one logger at startup and passes it down explicitly;
// there is no package-level default.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	level LogLevel
}

// NewLogger returns a Logger writing to w, discarding anything below min.
func NewLogger(w io.Writer, min LogLevel) *Logger {
	return &Logger{w: w, level: min}
}

func (l *Logger) logf(level LogLevel, prefix, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, prefix+format+"\n", args...)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(LogDebug, "debug: ", format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(LogInfo, "info: ", format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(LogError, "error: ", format, args...)
}
