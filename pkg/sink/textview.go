package sink

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Beeper rings a terminal bell. tcell.Screen satisfies it.
type Beeper interface {
	Beep() error
}

// TextView writes lines into a tview.TextView, coloring them with tview's
// color tags.
type TextView struct {
	mu     sync.Mutex
	view   *tview.TextView
	beeper Beeper
	color  tcell.Color
	beeps  int
}

// NewTextView creates a sink on view. Dynamic colors are enabled on the view.
// beeper may be nil, in which case Beep only counts the request.
func NewTextView(view *tview.TextView, beeper Beeper) *TextView {
	view.SetDynamicColors(true)
	return &TextView{
		view:   view,
		beeper: beeper,
		color:  tcell.ColorDefault,
	}
}

// View returns the underlying text view.
func (t *TextView) View() *tview.TextView {
	return t.view
}

// WriteLine appends line to the view in the current foreground color.
func (t *TextView) WriteLine(line string) {
	t.mu.Lock()
	tag := colorTag(t.color)
	t.mu.Unlock()

	// TextView does its own locking, so the write happens outside ours.
	fmt.Fprintf(t.view, "%s%s[-]\n", tag, tview.Escape(line))
}

// ForegroundColor returns the current foreground color.
func (t *TextView) ForegroundColor() tcell.Color {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.color
}

// SetForegroundColor changes the color of subsequently written lines.
func (t *TextView) SetForegroundColor(color tcell.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.color = color
}

// Beep rings the screen bell.
func (t *TextView) Beep() {
	t.mu.Lock()
	t.beeps++
	beeper := t.beeper
	t.mu.Unlock()

	if beeper != nil {
		_ = beeper.Beep()
	}
}

// Beeps returns how many times Beep was called.
func (t *TextView) Beeps() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.beeps
}

// colorTag returns the tview tag selecting color as foreground.
func colorTag(color tcell.Color) string {
	if color == tcell.ColorDefault || color == tcell.ColorReset || !color.Valid() {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", color.Hex())
}
