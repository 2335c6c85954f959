// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Canvas struct {
	Width        int  `toml:"width"`
	Height       int  `toml:"height"`
	Checkerboard bool `toml:"checkerboard"`
}

type Tools struct {
	Default     string  `toml:"default"`
	Color       string  `toml:"color"`
	StrokeWidth float32 `toml:"stroke_width"`
	Filled      bool    `toml:"filled"`
}

type Font struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
	Bold   bool    `toml:"bold"`
	Italic bool    `toml:"italic"`
}

type View struct {
	ZoomMin  float64 `toml:"zoom_min"`
	ZoomMax  float64 `toml:"zoom_max"`
	ZoomStep float64 `toml:"zoom_step"`
}

type Log struct {
	Level string `toml:"level"`
}

// Config is the full set of user-tunable settings.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Tools  Tools  `toml:"tools"`
	Font   Font   `toml:"font"`
	View   View   `toml:"view"`
	Log    Log    `toml:"log"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Canvas: Canvas{Width: 1024, Height: 768, Checkerboard: true},
		Tools:  Tools{Default: "line", Color: "#000000", StrokeWidth: 1.0},
		Font:   Font{Family: "Go", Size: 12},
		View:   View{ZoomMin: 0.1, ZoomMax: 5.0, ZoomStep: 0.1},
		Log:    Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Tools.StrokeWidth < 0 {
		return fmt.Errorf("stroke width %v must not be negative", c.Tools.StrokeWidth)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("font size %v must be positive", c.Font.Size)
	}
	if c.View.ZoomMin <= 0 || c.View.ZoomMin >= c.View.ZoomMax {
		return fmt.Errorf("zoom bounds [%v, %v] out of order", c.View.ZoomMin, c.View.ZoomMax)
	}
	if c.View.ZoomStep <= 0 {
		return fmt.Errorf("zoom step %v must be positive", c.View.ZoomStep)
	}
	if _, err := ParseColor(c.Tools.Color); err != nil {
		return err
	}
	return nil
}

// ParseColor accepts "#rrggbb" or "#rgb".
func ParseColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	hex := strings.TrimPrefix(s, "#")
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = errors.New("want 3 or 6 hex digits")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return c, nil
}
