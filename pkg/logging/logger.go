package logging

import (
	"os"
	"sync"

	"github.com/Qendolin/colorlog/pkg/sink"
	"github.com/gdamore/tcell/v2"
)

// DefaultTimeLayout is used when Config.TimeLayout is empty.
const DefaultTimeLayout = "2006-01-02T15:04:05"

// Config holds the construction-time settings of a Formatter. The zero value
// logs everything without colors.
type Config struct {
	Level      LogLevel
	Colors     bool
	TimeLayout string
}

// LeveledLogger is the set of logging operations a Formatter offers.
type LeveledLogger interface {
	Debug(c Caller, message string)
	DebugErr(c Caller, message string, err error)
	Info(c Caller, message string)
	InfoErr(c Caller, message string, err error)
	Warn(c Caller, message string)
	WarnErr(c Caller, message string, err error)
	Error(c Caller, message string)
	ErrorErr(c Caller, message string, err error)
	Fatal(c Caller, message string)
	FatalErr(c Caller, message string, err error)
}

var _ LeveledLogger = (*Formatter)(nil)

// Formatter filters log calls by level, formats them into a single line and
// writes them to a sink, optionally coloring the line by level.
type Formatter struct {
	mu           sync.Mutex
	clock        Clock
	sink         Sink
	level        LogLevel
	colors       bool
	layout       string
	defaultColor tcell.Color
}

// NewFormatter creates a Formatter. The clock is mandatory; a nil sink writes
// to standard output. The sink's foreground color at this point is what every
// colored line restores afterwards.
func NewFormatter(clock Clock, s Sink, cfg Config) (*Formatter, error) {
	if clock == nil {
		return nil, ErrNilClock
	}
	if s == nil {
		s = sink.NewConsole(os.Stdout)
	}
	layout := cfg.TimeLayout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return &Formatter{
		clock:        clock,
		sink:         s,
		level:        cfg.Level,
		colors:       cfg.Colors,
		layout:       layout,
		defaultColor: s.ForegroundColor(),
	}, nil
}

// Level returns the minimum level that produces output.
func (f *Formatter) Level() LogLevel {
	return f.level
}

// ColorsEnabled reports whether lines are colored by level.
func (f *Formatter) ColorsEnabled() bool {
	return f.colors
}

// Enabled reports whether a call at the given level would produce output.
func (f *Formatter) Enabled(level LogLevel) bool {
	return level >= f.level
}

// Log writes message at the given level.
func (f *Formatter) Log(level LogLevel, c Caller, message string) {
	f.log(level, c, message, nil, level == LevelFatal)
}

// LogErr writes message at the given level followed by the error text on its own line.
func (f *Formatter) LogErr(level LogLevel, c Caller, message string, err error) {
	f.log(level, c, message, err, false)
}

// log is the internal handler for all levels.
func (f *Formatter) log(level LogLevel, c Caller, message string, err error, beep bool) {
	if !f.Enabled(level) {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.colors {
		f.sink.SetForegroundColor(level.Color())
	}

	entry := newLogEntry(f.clock.Now(), level, c, message, err)
	f.sink.WriteLine(entry.Format(f.layout))
	if entry.Err != nil {
		f.sink.WriteLine(entry.Err.Error())
	}

	if f.colors {
		f.sink.SetForegroundColor(f.defaultColor)
	}
	if beep {
		f.sink.Beep()
	}
}

// Debug logs a debug message.
func (f *Formatter) Debug(c Caller, message string) {
	f.Log(LevelDebug, c, message)
}

// DebugErr logs a debug message and the error that caused it.
func (f *Formatter) DebugErr(c Caller, message string, err error) {
	f.LogErr(LevelDebug, c, message, err)
}

// Info logs an informational message.
func (f *Formatter) Info(c Caller, message string) {
	f.Log(LevelInfo, c, message)
}

// InfoErr logs an informational message and an associated error.
func (f *Formatter) InfoErr(c Caller, message string, err error) {
	f.LogErr(LevelInfo, c, message, err)
}

// Warn logs a warning message.
func (f *Formatter) Warn(c Caller, message string) {
	f.Log(LevelWarn, c, message)
}

// WarnErr logs a warning message and an associated error.
func (f *Formatter) WarnErr(c Caller, message string, err error) {
	f.LogErr(LevelWarn, c, message, err)
}

// Error logs an error message.
func (f *Formatter) Error(c Caller, message string) {
	f.Log(LevelError, c, message)
}

// ErrorErr logs an error message and an associated error.
func (f *Formatter) ErrorErr(c Caller, message string, err error) {
	f.LogErr(LevelError, c, message, err)
}

// Fatal logs a fatal message and rings the sink's bell. It does not exit.
func (f *Formatter) Fatal(c Caller, message string) {
	f.Log(LevelFatal, c, message)
}

// FatalErr logs a fatal message and an associated error. It does not exit.
//
// TODO: unlike Fatal this does not ring the bell. Kept for compatibility with
// existing consumers until it is confirmed whether that is intended.
func (f *Formatter) FatalErr(c Caller, message string, err error) {
	f.LogErr(LevelFatal, c, message, err)
}
