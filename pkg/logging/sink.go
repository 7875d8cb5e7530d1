package logging

import "github.com/gdamore/tcell/v2"

// Sink is the destination of formatted lines. Besides writing it exposes the
// terminal state the formatter needs: the foreground color and the bell.
//
// All methods are expected to be synchronous. Failures are the sink's
// business; the formatter does not inspect them.
type Sink interface {
	WriteLine(line string)
	ForegroundColor() tcell.Color
	SetForegroundColor(c tcell.Color)
	Beep()
}
