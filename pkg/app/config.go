package app

import (
	"flag"
	"os"

	"github.com/Qendolin/colorlog/pkg/config"
	"github.com/Qendolin/colorlog/pkg/logging"
)

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	Level      string
	Colors     bool
	ConfigPath string
	TimeLayout string
	TUI        bool

	set map[string]bool // flags given explicitly on the command line
}

// ParseCLIArgs parses the process's command-line flags and returns a populated CLIArgs struct.
func ParseCLIArgs() *CLIArgs {
	args, _ := ParseArgs(flag.CommandLine, os.Args[1:])
	return args
}

// ParseArgs registers the application flags on fs and parses arguments.
func ParseArgs(fs *flag.FlagSet, arguments []string) (*CLIArgs, error) {
	args := &CLIArgs{}

	fs.StringVar(&args.Level, "level", "debug", "Minimum level to print: debug, info, warn, error or fatal.")
	fs.BoolVar(&args.Colors, "colors", false, "Color lines by level.")
	fs.StringVar(&args.ConfigPath, "config", "", "Path to a .json5 or .toml file with logger settings.")
	fs.StringVar(&args.TimeLayout, "time-layout", "", "Go time layout for the timestamp column.")
	fs.BoolVar(&args.TUI, "tui", false, "Show the log in a terminal UI instead of printing it.")
	if err := fs.Parse(arguments); err != nil {
		return args, err
	}

	args.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		args.set[f.Name] = true
	})
	return args, nil
}

// LoggingConfig builds the formatter settings. Values from the config file
// are used as the base; flags given explicitly override them.
func (a *CLIArgs) LoggingConfig() (logging.Config, error) {
	var cfg logging.Config
	if a.ConfigPath != "" {
		loaded, err := config.Load(a.ConfigPath)
		if err != nil {
			return logging.Config{}, err
		}
		cfg = loaded
	}

	if a.ConfigPath == "" || a.set["level"] {
		level, err := logging.ParseLevel(a.Level)
		if err != nil {
			return logging.Config{}, err
		}
		cfg.Level = level
	}
	if a.ConfigPath == "" || a.set["colors"] {
		cfg.Colors = a.Colors
	}
	if a.set["time-layout"] {
		cfg.TimeLayout = a.TimeLayout
	}
	return cfg, nil
}
