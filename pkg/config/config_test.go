package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Qendolin/colorlog/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseJSON5(t *testing.T) {
	data := []byte(`{
		// comments and trailing commas are fine
		level: 'warn',
		colors: true,
		timeLayout: "15:04:05",
	}`)

	cfg, err := Parse(data, FormatJSON5)

	require.NoError(t, err)
	assert.Equal(t, logging.Config{Level: logging.LevelWarn, Colors: true, TimeLayout: "15:04:05"}, cfg)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
level = "ERROR"
colors = true
`)

	cfg, err := Parse(data, FormatTOML)

	require.NoError(t, err)
	assert.Equal(t, logging.Config{Level: logging.LevelError, Colors: true}, cfg)
}

func TestParseMissingKeysKeepDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`), FormatJSON5)

	require.NoError(t, err)
	assert.Equal(t, logging.Config{}, cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		target error
	}{
		{"bad level", `{level: "loud"}`, FormatJSON5, logging.ErrInvalidLevel},
		{"bad toml level", `level = "loud"`, FormatTOML, logging.ErrInvalidLevel},
		{"unknown format", `{}`, Format("yaml"), ErrUnsupportedFormat},
		{"broken json5", `{level:`, FormatJSON5, nil},
		{"broken toml", `level = `, FormatTOML, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.data), test.format)
			require.Error(t, err)
			if test.target != nil {
				assert.ErrorIs(t, err, test.target)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		err      bool
	}{
		{"log.json", FormatJSON5, false},
		{"log.JSON5", FormatJSON5, false},
		{"/etc/app/log.toml", FormatTOML, false},
		{"log.yaml", "", true},
		{"log", "", true},
	}

	for _, test := range tests {
		format, err := FormatFromPath(test.path)
		if test.err {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, "path %q", test.path)
			continue
		}
		require.NoError(t, err, "path %q", test.path)
		assert.Equal(t, test.expected, format, "path %q", test.path)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "log.toml", "level = \"info\"\ntimeLayout = \"2006\"\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, logging.Config{Level: logging.LevelInfo, TimeLayout: "2006"}, cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json5"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
