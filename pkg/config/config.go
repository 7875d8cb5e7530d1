// Package config loads formatter settings from JSON5 or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Qendolin/colorlog/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/titanous/json5"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

// Format selects the decoder for a config document.
type Format string

const (
	FormatJSON5 Format = "json5"
	FormatTOML  Format = "toml"
)

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".json5":
		return FormatJSON5, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// fileConfig mirrors the keys accepted in a config file. The level is kept
// as a string so both decoders see the same plain type.
type fileConfig struct {
	Level      string `json:"level" toml:"level"`
	Colors     bool   `json:"colors" toml:"colors"`
	TimeLayout string `json:"timeLayout" toml:"timeLayout"`
}

// Load reads and decodes the config file at path.
func Load(path string) (logging.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return logging.Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return logging.Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return logging.Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a config document. Keys that are absent keep their zero value.
func Parse(data []byte, format Format) (logging.Config, error) {
	var fc fileConfig
	switch format {
	case FormatJSON5:
		if err := json5.Unmarshal(data, &fc); err != nil {
			return logging.Config{}, fmt.Errorf("decoding json5: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &fc); err != nil {
			return logging.Config{}, fmt.Errorf("decoding toml: %w", err)
		}
	default:
		return logging.Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	cfg := logging.Config{
		Colors:     fc.Colors,
		TimeLayout: fc.TimeLayout,
	}
	if fc.Level != "" {
		level, err := logging.ParseLevel(fc.Level)
		if err != nil {
			return logging.Config{}, err
		}
		cfg.Level = level
	}
	return cfg, nil
}
