// Package callsite resolves caller metadata from the Go runtime and feeds it
// to a logging.Formatter, so call sites only pass the message.
package callsite

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/Qendolin/colorlog/pkg/logging"
)

// Here returns the caller skip frames above the function calling Here.
// Here(0) describes the function that called Here. Unknown frames yield an
// empty Caller.
func Here(skip int) logging.Caller {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return logging.Caller{}
	}
	c := logging.Caller{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		c.Function = shortFuncName(fn.Name())
	}
	return c
}

// shortFuncName trims the import path from a fully qualified function name,
// e.g. "github.com/a/b/pkg.(*T).Method" becomes "(*T).Method". The runtime
// escapes dots in the last path element ("gopkg.in/yaml%2ev3.Func"), so the
// first dot after the last slash always ends the package name.
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Logger captures the caller of each call and forwards it to a Formatter.
type Logger struct {
	f *logging.Formatter
}

// New wraps f.
func New(f *logging.Formatter) *Logger {
	return &Logger{f: f}
}

// Formatter returns the wrapped formatter.
func (l *Logger) Formatter() *logging.Formatter {
	return l.f
}

// The skip of 2 below accounts for the exported method and log/logErr.

func (l *Logger) log(level logging.LogLevel, message string) {
	if !l.f.Enabled(level) {
		return
	}
	l.f.Log(level, Here(2), message)
}

func (l *Logger) logf(level logging.LogLevel, format string, v ...interface{}) {
	if !l.f.Enabled(level) {
		return
	}
	l.f.Log(level, Here(2), fmt.Sprintf(format, v...))
}

func (l *Logger) logErr(level logging.LogLevel, message string, err error) {
	if !l.f.Enabled(level) {
		return
	}
	l.f.LogErr(level, Here(2), message, err)
}

// Debug logs a debug message.
func (l *Logger) Debug(message string) { l.log(logging.LevelDebug, message) }

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(logging.LevelDebug, format, v...) }

// DebugErr logs a debug message and an associated error.
func (l *Logger) DebugErr(message string, err error) { l.logErr(logging.LevelDebug, message, err) }

// Info logs an informational message.
func (l *Logger) Info(message string) { l.log(logging.LevelInfo, message) }

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, v ...interface{}) { l.logf(logging.LevelInfo, format, v...) }

// InfoErr logs an informational message and an associated error.
func (l *Logger) InfoErr(message string, err error) { l.logErr(logging.LevelInfo, message, err) }

// Warn logs a warning message.
func (l *Logger) Warn(message string) { l.log(logging.LevelWarn, message) }

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.logf(logging.LevelWarn, format, v...) }

// WarnErr logs a warning message and an associated error.
func (l *Logger) WarnErr(message string, err error) { l.logErr(logging.LevelWarn, message, err) }

// Error logs an error message.
func (l *Logger) Error(message string) { l.log(logging.LevelError, message) }

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(logging.LevelError, format, v...) }

// ErrorErr logs an error message and an associated error.
func (l *Logger) ErrorErr(message string, err error) { l.logErr(logging.LevelError, message, err) }

// Fatal logs a fatal message and rings the bell. It does not exit.
func (l *Logger) Fatal(message string) { l.log(logging.LevelFatal, message) }

// Fatalf logs a formatted fatal message and rings the bell. It does not exit.
func (l *Logger) Fatalf(format string, v ...interface{}) { l.logf(logging.LevelFatal, format, v...) }

// FatalErr logs a fatal message and an associated error. It does not exit.
func (l *Logger) FatalErr(message string, err error) { l.logErr(logging.LevelFatal, message, err) }

// ---- Global / Default Logger ----

var (
	defaultMu     sync.RWMutex
	defaultLogger = newFallback()
)

func newFallback() *Logger {
	f, err := logging.NewFormatter(logging.SystemClock{}, nil, logging.Config{})
	if err != nil {
		panic(err) // unreachable: the clock is not nil
	}
	return New(f)
}

// SetDefault replaces the default logger instance.
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Default returns the logger used by the package-level functions.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// The package-level functions go through the same log/logf/logErr helpers
// so that the caller depth stays at 2.

// Debug logs a debug message using the default logger.
func Debug(message string) { Default().log(logging.LevelDebug, message) }

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, v ...interface{}) { Default().logf(logging.LevelDebug, format, v...) }

// DebugErr logs a debug message and an associated error using the default logger.
func DebugErr(message string, err error) { Default().logErr(logging.LevelDebug, message, err) }

// Info logs an informational message using the default logger.
func Info(message string) { Default().log(logging.LevelInfo, message) }

// Infof logs a formatted informational message using the default logger.
func Infof(format string, v ...interface{}) { Default().logf(logging.LevelInfo, format, v...) }

// InfoErr logs an informational message and an associated error using the default logger.
func InfoErr(message string, err error) { Default().logErr(logging.LevelInfo, message, err) }

// Warn logs a warning message using the default logger.
func Warn(message string) { Default().log(logging.LevelWarn, message) }

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, v ...interface{}) { Default().logf(logging.LevelWarn, format, v...) }

// WarnErr logs a warning message and an associated error using the default logger.
func WarnErr(message string, err error) { Default().logErr(logging.LevelWarn, message, err) }

// Error logs an error message using the default logger.
func Error(message string) { Default().log(logging.LevelError, message) }

// Errorf logs a formatted error message using the default logger.
func Errorf(format string, v ...interface{}) { Default().logf(logging.LevelError, format, v...) }

// ErrorErr logs an error message and an associated error using the default logger.
func ErrorErr(message string, err error) { Default().logErr(logging.LevelError, message, err) }

// Fatal logs a fatal message using the default logger. It does not exit.
func Fatal(message string) { Default().log(logging.LevelFatal, message) }

// Fatalf logs a formatted fatal message using the default logger. It does not exit.
func Fatalf(format string, v ...interface{}) { Default().logf(logging.LevelFatal, format, v...) }

// FatalErr logs a fatal message and an associated error using the default logger. It does not exit.
func FatalErr(message string, err error) { Default().logErr(logging.LevelFatal, message, err) }
