package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Qendolin/colorlog/pkg/logging"
	"github.com/Qendolin/colorlog/pkg/sink"
	"github.com/Qendolin/colorlog/pkg/ui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// LogPage is a full-screen log viewer. Lines written to its sink appear in a
// scrollable text view; the frame title counts warnings and worse.
type LogPage struct {
	*tview.Flex
	frame  *widgets.TitleFrame
	view   *sink.TextView
	onQuit func()
	layout string

	mu     sync.Mutex
	counts map[logging.LogLevel]int
}

var _ Page = (*LogPage)(nil)

// NewLogPage creates a LogPage. beeper receives fatal-level bells and may be
// nil. onQuit runs when ESC or Ctrl+C is pressed.
func NewLogPage(beeper sink.Beeper, onQuit func()) *LogPage {
	textView := tview.NewTextView().
		SetScrollable(true).
		SetWrap(true)

	page := &LogPage{
		Flex:   tview.NewFlex().SetDirection(tview.FlexRow),
		view:   sink.NewTextView(textView, beeper),
		onQuit: onQuit,
		layout: logging.DefaultTimeLayout,
		counts: make(map[logging.LogLevel]int),
	}
	page.frame = widgets.NewTitleFrame(textView, "Log")
	page.Flex.AddItem(page.frame, 0, 1, true)
	page.updateStatus()

	page.Flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			if page.onQuit != nil {
				page.onQuit()
			}
			return nil
		}
		return event
	})
	return page
}

// SetChangedFunc registers a callback for new content, typically
// Application.Draw, as tview requires for writes from other goroutines.
func (p *LogPage) SetChangedFunc(handler func()) *LogPage {
	p.view.View().SetChangedFunc(handler)
	return p
}

// SetTimeLayout sets the timestamp layout of the lines written to the page,
// so the level column can be found. An empty layout means the default.
func (p *LogPage) SetTimeLayout(layout string) *LogPage {
	if layout == "" {
		layout = logging.DefaultTimeLayout
	}
	p.layout = layout
	return p
}

// Sink returns the sink that writes into this page.
func (p *LogPage) Sink() logging.Sink {
	return &countingSink{TextView: p.view, page: p}
}

// Count returns how many lines of the given level were written.
func (p *LogPage) Count(level logging.LogLevel) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[level]
}

// Status returns the text shown on the right of the frame.
func (p *LogPage) Status() string {
	return p.frame.Status()
}

// GetActionPrompts returns the key actions for the log page.
func (p *LogPage) GetActionPrompts() []ActionPrompt {
	return []ActionPrompt{
		{Input: "↑/↓", Action: "Scroll"},
		{Input: "ESC", Action: "Quit"},
	}
}

// observe counts a primary log line by its level column. A line only counts
// when the text before that column is a timestamp in the page's layout, so
// raw error lines and level names inside messages are ignored.
func (p *LogPage) observe(line string) {
	lvl, ok := levelColumn(line, p.layout)
	if !ok {
		return
	}
	p.mu.Lock()
	p.counts[lvl]++
	p.mu.Unlock()
	p.updateStatus()
}

// levelColumn extracts the level from a formatted line. The layout may
// itself contain the column separator, which shifts the level column right.
func levelColumn(line, layout string) (logging.LogLevel, bool) {
	const sep = " - "
	tsCols := strings.Count(layout, sep) + 1
	parts := strings.SplitN(line, sep, tsCols+2)
	if len(parts) < tsCols+2 {
		return 0, false
	}
	if _, err := time.Parse(layout, strings.Join(parts[:tsCols], sep)); err != nil {
		return 0, false
	}
	for _, lvl := range logging.Levels() {
		if parts[tsCols] == lvl.String() {
			return lvl, true
		}
	}
	return 0, false
}

func (p *LogPage) updateStatus() {
	p.mu.Lock()
	warnings := p.counts[logging.LevelWarn]
	errs := p.counts[logging.LevelError] + p.counts[logging.LevelFatal]
	p.mu.Unlock()

	p.frame.SetStatus(fmt.Sprintf("[yellow]Warnings: %d[-]  [red]Errors: %d[-]", warnings, errs))
}

// countingSink feeds the page's counters before writing.
type countingSink struct {
	*sink.TextView
	page *LogPage
}

func (s *countingSink) WriteLine(line string) {
	s.page.observe(line)
	s.TextView.WriteLine(line)
}
