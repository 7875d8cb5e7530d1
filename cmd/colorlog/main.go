package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Qendolin/colorlog/pkg/app"
	"github.com/Qendolin/colorlog/pkg/logging"
	"github.com/Qendolin/colorlog/pkg/logging/callsite"
	"github.com/Qendolin/colorlog/pkg/sink"
	"github.com/Qendolin/colorlog/pkg/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func main() {
	cliArgs := app.ParseCLIArgs()

	cfg, err := cliArgs.LoggingConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cliArgs.TUI {
		err = runTUI(cfg)
	} else {
		err = runConsole(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runConsole(cfg logging.Config) error {
	f, err := logging.NewFormatter(logging.SystemClock{}, sink.NewConsole(os.Stdout), cfg)
	if err != nil {
		return err
	}
	callsite.SetDefault(callsite.New(f))
	emitSamples(callsite.Default())
	return nil
}

func runTUI(cfg logging.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}

	tuiApp := tview.NewApplication().SetScreen(screen)
	page := ui.NewLogPage(screen, tuiApp.Stop)
	page.SetChangedFunc(func() { tuiApp.Draw() }).SetTimeLayout(cfg.TimeLayout)

	f, err := logging.NewFormatter(logging.SystemClock{}, page.Sink(), cfg)
	if err != nil {
		return err
	}
	logger := callsite.New(f)
	go emitSamples(logger)

	if err := tuiApp.SetRoot(page, true).Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}

// emitSamples writes one line per level plus an error-carrying line.
func emitSamples(l *callsite.Logger) {
	l.Debug("Resolved configuration.")
	l.Infof("Colors enabled: %t, minimum level: %s", l.Formatter().ColorsEnabled(), l.Formatter().Level())
	l.Warn("Disk usage above 80%.")

	_, err := os.Stat("does-not-exist.conf")
	if errors.Is(err, fs.ErrNotExist) {
		l.ErrorErr("Optional settings file is missing.", err)
	}
	l.Error("Request failed after 3 attempts.")
	l.Fatal("Shutting down.")
}
