package game

import (
	"github.com/faiface/pixel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"os"
	"time"
)

// Config holds everything fixed for the lifetime of a Field
type Config struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	NumMines int   `yaml:"mines"`
	Seed     int64 `yaml:"seed"`

	SquareWidth float64 `yaml:"square_width"`
	SquareGap   float64 `yaml:"square_gap"`

	// Time for a hidden square to fade into its hover color
	FadeDuration time.Duration `yaml:"fade_duration"`
}

func DefaultConfig() Config {
	return Config{
		Width:        defaultWidth,
		Height:       defaultHeight,
		NumMines:     defaultNumMines,
		SquareWidth:  defaultSquareWidth,
		SquareGap:    defaultSquareGap,
		FadeDuration: defaultFadeDuration,
	}
}

// LoadConfig reads a yaml file on top of DefaultConfig. Unknown keys are an
// error. The result is not validated; NewField does that.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return config, errors.Wrapf(err, "parse config %s", path)
	}
	return config, nil
}

func (config Config) grid() Grid {
	return Grid{Width: config.Width, Height: config.Height}
}

func (config Config) layout() Layout {
	return Layout{
		Grid:        config.grid(),
		Origin:      pixel.V(config.SquareWidth, config.SquareWidth),
		SquareWidth: config.SquareWidth,
		SquareGap:   config.SquareGap,
	}
}

// Validate rejects configurations a Field cannot honor. The mine limit leaves
// room for the largest possible safe zone, so the first reveal always has
// enough squares to place mines on.
func (config Config) Validate() error {
	if config.Width <= 0 || config.Height <= 0 {
		return errors.Wrapf(ErrInvalidSize, "%dx%d", config.Width, config.Height)
	}
	if config.SquareWidth <= 0 || config.SquareGap < 0 || config.SquareGap >= config.SquareWidth {
		return errors.Wrapf(ErrInvalidSize, "square width %v, gap %v", config.SquareWidth, config.SquareGap)
	}
	if config.NumMines < 0 {
		return errors.Wrapf(ErrNegativeMines, "%d", config.NumMines)
	}

	grid := config.grid()
	if limit := grid.Cells() - grid.MaxSafeZone(); config.NumMines > limit {
		return errors.Wrapf(ErrTooManyMines, "%d mines on %dx%d, at most %d fit",
			config.NumMines, config.Width, config.Height, limit)
	}
	return nil
}
