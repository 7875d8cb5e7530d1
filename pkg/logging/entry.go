package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// LogLevel defines the severity of a log entry.
type LogLevel int

// Enum for log levels. The order is important for filtering.
const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// levelColors is the fixed foreground color for each level. tcell uses the
// HTML names for the bright half of the 16 color palette.
var levelColors = map[LogLevel]tcell.Color{
	LevelDebug: tcell.ColorLime,    // green
	LevelInfo:  tcell.ColorAqua,    // cyan
	LevelWarn:  tcell.ColorYellow,  // yellow
	LevelError: tcell.ColorRed,     // red
	LevelFatal: tcell.ColorFuchsia, // magenta
}

// Levels returns all levels in ascending order of urgency.
func Levels() []LogLevel {
	return []LogLevel{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// String returns the string representation of a LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Color returns the foreground color lines of this level are written in.
func (l LogLevel) Color() tcell.Color {
	if c, ok := levelColors[l]; ok {
		return c
	}
	return tcell.ColorDefault
}

// Valid reports whether l is one of the defined levels.
func (l LogLevel) Valid() bool {
	return l >= LevelDebug && l <= LevelFatal
}

// ParseLevel converts a level name into a LogLevel. Matching is case-insensitive.
func ParseLevel(s string) (LogLevel, error) {
	ls := strings.ToLower(strings.TrimSpace(s))

	for _, lvl := range Levels() {
		if strings.ToLower(lvl.String()) == ls {
			return lvl, nil
		}
	}

	switch ls {
	case "warning":
		return LevelWarn, nil
	case "err":
		return LevelError, nil
	}

	return LevelDebug, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l LogLevel) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LogLevel) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// Caller identifies where a log call originated. It is supplied by the
// calling code; the formatter never resolves it on its own.
type Caller struct {
	Function string
	File     string
	Line     int
}

// LogEntry represents a single log message. It only lives for the duration
// of one logging call.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	File      string // base name only
	Caller    string
	Line      int
	Message   string
	Err       error
}

// newLogEntry builds an entry from the caller metadata, stripping the
// directory part of the source file path.
func newLogEntry(ts time.Time, level LogLevel, c Caller, message string, err error) LogEntry {
	line := c.Line
	if line < 0 {
		line = 0
	}
	return LogEntry{
		Timestamp: ts,
		Level:     level,
		File:      baseName(c.File),
		Caller:    c.Function,
		Line:      line,
		Message:   message,
		Err:       err,
	}
}

// baseName strips everything up to the last slash or backslash. Unlike
// filepath.Base it keeps an empty path empty and handles both separators
// regardless of the host OS.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Format renders the entry as a single line using layout for the timestamp.
func (e LogEntry) Format(layout string) string {
	return fmt.Sprintf("%s - %s - %s - Line %d - %s - %s",
		e.Timestamp.Format(layout), e.Level, e.File, e.Line, e.Caller, e.Message)
}
