package sink

import (
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestRecorderKeepsCallOrder(t *testing.T) {
	r := NewRecorder(tcell.ColorWhite)

	r.SetForegroundColor(tcell.ColorRed)
	r.WriteLine("a")
	r.Beep()
	r.WriteLine("b")

	assert.Equal(t, []Event{
		{Kind: EventSetColor, Color: tcell.ColorRed},
		{Kind: EventWrite, Line: "a"},
		{Kind: EventBeep},
		{Kind: EventWrite, Line: "b"},
	}, r.Events())
	assert.Equal(t, []string{"a", "b"}, r.Lines())
	assert.Equal(t, 1, r.Beeps())
	assert.Equal(t, 1, r.ColorChanges())
	assert.Equal(t, tcell.ColorRed, r.ForegroundColor())
}

func TestRecorderColorReadsAreNotEvents(t *testing.T) {
	r := NewRecorder(tcell.ColorNavy)

	assert.Equal(t, tcell.ColorNavy, r.ForegroundColor())
	assert.Empty(t, r.Events())
}

func TestRecorderEventsIsACopy(t *testing.T) {
	r := NewRecorder(tcell.ColorDefault)
	r.WriteLine("a")

	events := r.Events()
	events[0].Line = "changed"

	assert.Equal(t, []string{"a"}, r.Lines())
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder(tcell.ColorDefault)
	r.SetForegroundColor(tcell.ColorBlue)
	r.WriteLine("a")

	r.Reset()

	assert.Empty(t, r.Events())
	assert.Equal(t, tcell.ColorBlue, r.ForegroundColor())
}

func TestRecorderConcurrentWrites(t *testing.T) {
	r := NewRecorder(tcell.ColorDefault)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.WriteLine("x")
			}
		}()
	}
	wg.Wait()

	assert.Len(t, r.Lines(), 1000)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "write", EventWrite.String())
	assert.Equal(t, "set-color", EventSetColor.String())
	assert.Equal(t, "beep", EventBeep.String())
	assert.Equal(t, "unknown", EventKind(9).String())
}
