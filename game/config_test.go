package game

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	assert.NoError(t, config.Validate())
	assert.Equal(t, 24, config.Width)
	assert.Equal(t, 14, config.Height)
	assert.Equal(t, 80, config.NumMines)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidSize},
		{"negative height", func(c *Config) { c.Height = -2 }, ErrInvalidSize},
		{"zero square", func(c *Config) { c.SquareWidth = 0 }, ErrInvalidSize},
		{"gap too wide", func(c *Config) { c.SquareGap = c.SquareWidth }, ErrInvalidSize},
		{"negative mines", func(c *Config) { c.NumMines = -1 }, ErrNegativeMines},
		{"no room", func(c *Config) { c.Width, c.Height, c.NumMines = 4, 4, 8 }, ErrTooManyMines},
		{"just enough room", func(c *Config) { c.Width, c.Height, c.NumMines = 4, 4, 7 }, nil},
		{"narrow grid", func(c *Config) { c.Width, c.Height, c.NumMines = 2, 2, 1 }, ErrTooManyMines},
		{"single square", func(c *Config) { c.Width, c.Height, c.NumMines = 1, 1, 0 }, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.modify(&config)

			err := config.Validate()
			if test.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "queensweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
width: 10
height: 8
mines: 12
seed: 99
fade_duration: 150ms
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, config.Width)
	assert.Equal(t, 8, config.Height)
	assert.Equal(t, 12, config.NumMines)
	assert.Equal(t, int64(99), config.Seed)
	assert.Equal(t, 150*time.Millisecond, config.FadeDuration)
	assert.Equal(t, float64(defaultSquareWidth), config.SquareWidth)
	assert.NoError(t, config.Validate())
}

func TestLoadConfigUnknownKey(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "width: 10\ncolour: red\n"))
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
