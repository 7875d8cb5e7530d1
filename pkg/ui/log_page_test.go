package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/Qendolin/colorlog/pkg/logging"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBeeper struct {
	beeps int
}

func (b *fakeBeeper) Beep() error {
	b.beeps++
	return nil
}

func TestLogPageCountsLevels(t *testing.T) {
	beeper := &fakeBeeper{}
	page := NewLogPage(beeper, nil)
	f, err := logging.NewFormatter(logging.FixedClock(time.Unix(0, 0)), page.Sink(), logging.Config{Colors: true})
	require.NoError(t, err)
	c := logging.Caller{Function: "Run", File: "main.go", Line: 1}

	f.Info(c, "started")
	f.Warn(c, "slow")
	f.WarnErr(c, "slower", errors.New("timeout"))
	f.Error(c, "failed")
	f.Fatal(c, "down")

	assert.Equal(t, 1, page.Count(logging.LevelInfo))
	assert.Equal(t, 2, page.Count(logging.LevelWarn))
	assert.Equal(t, 1, page.Count(logging.LevelError))
	assert.Equal(t, 1, page.Count(logging.LevelFatal))
	assert.Equal(t, "[yellow]Warnings: 2[-]  [red]Errors: 2[-]", page.Status())
	assert.Equal(t, 1, beeper.beeps)
}

func TestLogPageInitialStatus(t *testing.T) {
	page := NewLogPage(nil, nil)

	assert.Equal(t, "[yellow]Warnings: 0[-]  [red]Errors: 0[-]", page.Status())
	assert.NotEmpty(t, page.GetActionPrompts())
}

func TestLogPageQuitKey(t *testing.T) {
	quit := 0
	page := NewLogPage(nil, func() { quit++ })

	capture := page.GetInputCapture()
	require.NotNil(t, capture)

	assert.Nil(t, capture(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	assert.Same(t, ev, capture(ev))
	assert.Equal(t, 1, quit)
}

func TestLogPageCountsOnlyLevelColumn(t *testing.T) {
	page := NewLogPage(nil, nil)
	f, err := logging.NewFormatter(logging.FixedClock(time.Unix(0, 0)), page.Sink(), logging.Config{Colors: true})
	require.NoError(t, err)
	c := logging.Caller{Function: "Run", File: "main.go", Line: 1}

	f.Info(c, "retry - DEBUG - step")
	f.InfoErr(c, "upstream", errors.New("remote said: x - FATAL - y"))
	f.Warn(c, "a - ERROR - b")

	assert.Equal(t, 2, page.Count(logging.LevelInfo))
	assert.Equal(t, 1, page.Count(logging.LevelWarn))
	assert.Zero(t, page.Count(logging.LevelDebug))
	assert.Zero(t, page.Count(logging.LevelError))
	assert.Zero(t, page.Count(logging.LevelFatal))
	assert.Equal(t, "[yellow]Warnings: 1[-]  [red]Errors: 0[-]", page.Status())
}

func TestLogPageSeparatorInTimeLayout(t *testing.T) {
	const layout = "2006-01-02 - 15:04:05"
	page := NewLogPage(nil, nil).SetTimeLayout(layout)
	f, err := logging.NewFormatter(logging.FixedClock(time.Unix(0, 0)), page.Sink(), logging.Config{Colors: true, TimeLayout: layout})
	require.NoError(t, err)
	c := logging.Caller{Function: "Run", File: "main.go", Line: 1}

	f.Error(c, "failed - WARN - x")
	f.Debug(c, "noise")

	assert.Equal(t, 1, page.Count(logging.LevelError))
	assert.Equal(t, 1, page.Count(logging.LevelDebug))
	assert.Zero(t, page.Count(logging.LevelWarn))
}

func TestLevelColumn(t *testing.T) {
	tests := []struct {
		line   string
		layout string
		want   logging.LogLevel
		ok     bool
	}{
		{"2024-01-02T03:04:05 - WARN - main.go - Line 1 - Run - x", logging.DefaultTimeLayout, logging.LevelWarn, true},
		{"2024-01-02T03:04:05 - WARNING - main.go - Line 1 - Run - x", logging.DefaultTimeLayout, 0, false},
		{"remote said: x - FATAL - y", logging.DefaultTimeLayout, 0, false},
		{"2024-01-02T03:04:05", logging.DefaultTimeLayout, 0, false},
		{"2024-01-02 - 03:04:05 - INFO - main.go - Line 1 - Run - x", "2006-01-02 - 15:04:05", logging.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := levelColumn(tt.line, tt.layout)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
