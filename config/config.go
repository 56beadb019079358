// Package config provides configuration loading for the platformer.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable settings
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Tiles   TilesConfig   `yaml:"tiles"`
	Player  PlayerConfig  `yaml:"player"`
	Palette PaletteConfig `yaml:"palette"`
	Debug   DebugConfig   `yaml:"debug"`
}

// WindowConfig holds display settings
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`  // logical pixels
	Height     int    `yaml:"height"` // logical pixels
	Scale      int    `yaml:"scale"`  // window pixels per logical pixel
	Fullscreen bool   `yaml:"fullscreen"`
	TPS        int    `yaml:"tps"`
}

// TilesConfig holds tile geometry
type TilesConfig struct {
	Size int `yaml:"size"`
}

// PlayerConfig holds player movement settings
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // tiles per second
}

// PaletteConfig holds "#rrggbb" colors
type PaletteConfig struct {
	Background string `yaml:"background"`
	Air        string `yaml:"air"`
	Ground     string `yaml:"ground"`
	Player     string `yaml:"player"`
}

// DebugConfig holds diagnostics settings
type DebugConfig struct {
	Overlay    bool `yaml:"overlay"`
	TraceBatch int  `yaml:"trace_batch"` // trace rows buffered before a flush
}

// Palette is the parsed form of PaletteConfig
type Palette struct {
	Background color.RGBA
	Air        color.RGBA
	Ground     color.RGBA
	Player     color.RGBA
}

// Default returns the embedded default configuration
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load reads configuration layered over the defaults.
// Search order: customPath -> ~/.platformer/config.yaml -> ./configs/config.yaml -> defaults only
func Load(customPath string) (Config, error) {
	return load(customPath, searchPaths())
}

func load(customPath string, candidates []string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		if err := overlayFile(&cfg, customPath); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range candidates {
		err := overlayFile(&cfg, path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, err
		}
		break
	}
	return cfg, cfg.Validate()
}

// overlayFile decodes a YAML file on top of cfg; unset keys keep their values
func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".platformer", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", "config.yaml"))
}

// Validate checks that the configuration can drive a window
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("config: window scale %d must be positive", c.Window.Scale)
	case c.Window.TPS <= 0:
		return fmt.Errorf("config: tps %d must be positive", c.Window.TPS)
	case c.Tiles.Size <= 0:
		return fmt.Errorf("config: tile size %d must be positive", c.Tiles.Size)
	case c.Player.Speed < 0:
		return fmt.Errorf("config: player speed %v must not be negative", c.Player.Speed)
	case c.Debug.TraceBatch < 0:
		return fmt.Errorf("config: trace batch %d must not be negative", c.Debug.TraceBatch)
	}
	_, err := c.Palette.Parse()
	return err
}

// WindowSize returns the window size in screen pixels
func (c Config) WindowSize() (int, int) {
	return c.Window.Width * c.Window.Scale, c.Window.Height * c.Window.Scale
}

// Parse converts every palette entry into a color
func (p PaletteConfig) Parse() (Palette, error) {
	var out Palette
	entries := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", p.Background, &out.Background},
		{"air", p.Air, &out.Air},
		{"ground", p.Ground, &out.Ground},
		{"player", p.Player, &out.Player},
	}
	for _, e := range entries {
		c, err := ParseHexColor(e.hex)
		if err != nil {
			return out, fmt.Errorf("config: palette %s: %w", e.name, err)
		}
		*e.dst = c
	}
	return out, nil
}

// ParseHexColor parses a "#rrggbb" string into an opaque color
func ParseHexColor(hex string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	if len(hex) != 7 || hex[0] != '#' {
		return c, fmt.Errorf("invalid color %q: want #rrggbb", hex)
	}
	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return c, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	c.R, c.G, c.B = uint8(rgb>>16), uint8(rgb>>8), uint8(rgb)
	return c, nil
}
