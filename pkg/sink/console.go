// Package sink provides destinations for formatted log lines.
package sink

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
)

const bell = "\a"

// Console writes lines to a terminal stream. Foreground colors are emitted as
// ANSI escape sequences when the stream is a terminal.
type Console struct {
	mu      sync.Mutex
	w       io.Writer
	color   tcell.Color
	escapes bool
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithEscapes forces escape sequence output on or off, overriding terminal detection.
func WithEscapes(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.escapes = enabled
	}
}

// NewConsole creates a Console writing to w. The initial foreground color is
// tcell.ColorDefault.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	if w == nil {
		w = os.Stdout
	}
	c := &Console{
		w:       w,
		color:   tcell.ColorDefault,
		escapes: isTerminal(w) && os.Getenv("NO_COLOR") == "",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Escapes reports whether color changes are written to the stream.
func (c *Console) Escapes() bool {
	return c.escapes
}

// WriteLine writes line followed by a newline.
func (c *Console) WriteLine(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.w, line+"\n")
}

// ForegroundColor returns the last color set, or tcell.ColorDefault.
func (c *Console) ForegroundColor() tcell.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color
}

// SetForegroundColor changes the color used for subsequent lines.
func (c *Console) SetForegroundColor(color tcell.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.color = color
	if c.escapes {
		_, _ = io.WriteString(c.w, foregroundSGR(color))
	}
}

// Beep writes the BEL control character. Like color escapes, it is only
// written when the output is a terminal, so piped logs stay plain text.
func (c *Console) Beep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.escapes {
		return
	}
	_, _ = io.WriteString(c.w, bell)
}

// foregroundSGR returns the escape sequence that selects color as the
// foreground color.
func foregroundSGR(color tcell.Color) string {
	switch {
	case color == tcell.ColorDefault, color == tcell.ColorReset, !color.Valid():
		return "\x1b[39m"
	case color.IsRGB():
		r, g, b := color.RGB()
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
	}

	n := int(color - tcell.ColorValid)
	switch {
	case n < 8:
		return fmt.Sprintf("\x1b[%dm", 30+n)
	case n < 16:
		return fmt.Sprintf("\x1b[%dm", 90+n-8)
	default:
		return fmt.Sprintf("\x1b[38;5;%dm", n)
	}
}
