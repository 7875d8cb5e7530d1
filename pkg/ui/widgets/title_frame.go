package widgets

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TitleFrame wraps another primitive and draws a horizontal rule above it,
// with a title on the left and a status text on the right.
type TitleFrame struct {
	*tview.Box
	content tview.Primitive
	title   string
	color   tcell.Color

	mu     sync.Mutex
	status string // may contain tview color tags; set from any goroutine
}

// NewTitleFrame creates a new TitleFrame.
func NewTitleFrame(content tview.Primitive, title string) *TitleFrame {
	return &TitleFrame{
		Box:     tview.NewBox(),
		content: content,
		title:   title,
		color:   tcell.ColorWhite,
	}
}

// SetTitle changes the text on the left of the rule.
func (f *TitleFrame) SetTitle(title string) *TitleFrame {
	f.title = title
	return f
}

// SetStatus changes the text on the right of the rule.
func (f *TitleFrame) SetStatus(status string) *TitleFrame {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	return f
}

// Status returns the current status text.
func (f *TitleFrame) Status() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Draw draws the rule, the texts and the wrapped content below them.
func (f *TitleFrame) Draw(screen tcell.Screen) {
	f.Box.DrawForSubclass(screen, f)

	x, y, width, height := f.GetRect()

	lineRune := tview.BoxDrawingsLightHorizontal
	if f.HasFocus() {
		lineRune = tview.BoxDrawingsHeavyHorizontal
	}
	style := tcell.StyleDefault.Background(tview.Styles.PrimitiveBackgroundColor).Foreground(f.color)
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, lineRune, nil, style)
	}

	if f.title != "" {
		tview.Print(screen, " "+tview.Escape(f.title)+" ", x+1, y, width-2, tview.AlignLeft, f.color)
	}
	if status := f.Status(); status != "" {
		tview.Print(screen, " "+status+" ", x+1, y, width-2, tview.AlignRight, f.color)
	}

	if height <= 1 {
		return
	}
	f.content.SetRect(x, y+1, width, height-1)
	f.content.Draw(screen)
}

// Focus passes focus on to the wrapped content.
func (f *TitleFrame) Focus(delegate func(p tview.Primitive)) {
	delegate(f.content)
}

// HasFocus returns whether the wrapped content has focus.
func (f *TitleFrame) HasFocus() bool {
	return f.content.HasFocus()
}

// InputHandler forwards key events to the wrapped content.
func (f *TitleFrame) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return f.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if handler := f.content.InputHandler(); handler != nil {
			handler(event, setFocus)
		}
	})
}

// MouseHandler forwards mouse events inside the frame to the wrapped content.
func (f *TitleFrame) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return f.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if !f.InRect(event.Position()) {
			return false, nil
		}
		return f.content.MouseHandler()(action, event, setFocus)
	})
}
