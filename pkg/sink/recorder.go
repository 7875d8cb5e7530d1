package sink

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// EventKind identifies a call made on a Recorder.
type EventKind int

const (
	EventWrite EventKind = iota
	EventSetColor
	EventBeep
)

func (k EventKind) String() string {
	switch k {
	case EventWrite:
		return "write"
	case EventSetColor:
		return "set-color"
	case EventBeep:
		return "beep"
	default:
		return "unknown"
	}
}

// Event is a single recorded sink call.
type Event struct {
	Kind  EventKind
	Line  string      // EventWrite only
	Color tcell.Color // EventSetColor only
}

// Recorder keeps every line, color change and bell in memory. It is thread-safe.
type Recorder struct {
	mu     sync.RWMutex
	color  tcell.Color
	events []Event
}

// NewRecorder creates a Recorder whose foreground color starts as initial.
func NewRecorder(initial tcell.Color) *Recorder {
	return &Recorder{
		color:  initial,
		events: make([]Event, 0, 64),
	}
}

func (r *Recorder) add(e Event) {
	r.events = append(r.events, e)
}

// WriteLine records a written line.
func (r *Recorder) WriteLine(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(Event{Kind: EventWrite, Line: line})
}

// ForegroundColor returns the current color. Reads are not recorded.
func (r *Recorder) ForegroundColor() tcell.Color {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.color
}

// SetForegroundColor records a color change.
func (r *Recorder) SetForegroundColor(color tcell.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.color = color
	r.add(Event{Kind: EventSetColor, Color: color})
}

// Beep records a bell.
func (r *Recorder) Beep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(Event{Kind: EventBeep})
}

// Events returns a copy of all recorded events in call order.
func (r *Recorder) Events() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// Return a copy to prevent race conditions on the slice itself
	eventsCopy := make([]Event, len(r.events))
	copy(eventsCopy, r.events)
	return eventsCopy
}

// Lines returns the written lines in order.
func (r *Recorder) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var lines []string
	for _, e := range r.events {
		if e.Kind == EventWrite {
			lines = append(lines, e.Line)
		}
	}
	return lines
}

// Beeps returns how many bells were recorded.
func (r *Recorder) Beeps() int {
	return r.count(EventBeep)
}

// ColorChanges returns how many color changes were recorded.
func (r *Recorder) ColorChanges() int {
	return r.count(EventSetColor)
}

func (r *Recorder) count(kind EventKind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded events. The current color is kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = r.events[:0]
}
