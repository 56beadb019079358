package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultMatchesConstants(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != ScreenWidth || cfg.Window.Height != ScreenHeight {
		t.Errorf("window = %dx%d, want %dx%d", cfg.Window.Width, cfg.Window.Height, ScreenWidth, ScreenHeight)
	}
	if cfg.Window.Scale != PixelScale {
		t.Errorf("scale = %d, want %d", cfg.Window.Scale, PixelScale)
	}
	if cfg.Window.Title != WindowTitle {
		t.Errorf("title = %q, want %q", cfg.Window.Title, WindowTitle)
	}
	if cfg.Tiles.Size != TileSize {
		t.Errorf("tile size = %d, want %d", cfg.Tiles.Size, TileSize)
	}
	if cfg.Player.Speed != PlayerSpeed {
		t.Errorf("speed = %v, want %v", cfg.Player.Speed, PlayerSpeed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}

	w, h := cfg.WindowSize()
	if w != WindowWidth || h != WindowHeight {
		t.Errorf("WindowSize() = %dx%d, want %dx%d", w, h, WindowWidth, WindowHeight)
	}
}

func TestDefaultPalette(t *testing.T) {
	p, err := Default().Palette.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Air != (color.RGBA{0, 255, 255, 255}) {
		t.Errorf("air = %v, want cyan", p.Air)
	}
	if p.Ground != (color.RGBA{128, 0, 0, 255}) {
		t.Errorf("ground = %v, want dark red", p.Ground)
	}
	if p.Background != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("background = %v, want black", p.Background)
	}
}

func TestLoadCustomOverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
player:
  speed: 8.5
palette:
  air: "#112233"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player.Speed != 8.5 {
		t.Errorf("speed = %v, want 8.5", cfg.Player.Speed)
	}
	if cfg.Palette.Air != "#112233" {
		t.Errorf("air = %q, want #112233", cfg.Palette.Air)
	}
	// untouched keys keep their defaults
	if cfg.Window.Width != ScreenWidth || cfg.Palette.Ground != "#800000" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom file returned nil error")
	}
}

func TestLoadCustomInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "window: ["},
		{"zero tile size", "tiles:\n  size: 0\n"},
		{"negative speed", "player:\n  speed: -1\n"},
		{"bad color", "palette:\n  ground: red\n"},
		{"zero scale", "window:\n  scale: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, "cfg.yaml", tc.body)
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) returned nil error", tc.body)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "missing.yaml")
	second := writeFile(t, dir, "second.yaml", "tiles:\n  size: 8\n")
	third := writeFile(t, dir, "third.yaml", "tiles:\n  size: 32\n")

	cfg, err := load("", []string{first, second, third})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.Tiles.Size != 8 {
		t.Errorf("tile size = %d, want 8 from the first existing file", cfg.Tiles.Size)
	}

	cfg, err = load("", []string{first})
	if err != nil {
		t.Fatalf("load() with no files error = %v", err)
	}
	if cfg.Tiles.Size != TileSize {
		t.Errorf("tile size = %d, want default %d", cfg.Tiles.Size, TileSize)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		want    color.RGBA
		wantErr bool
	}{
		{"#00ffff", color.RGBA{0, 255, 255, 255}, false},
		{"#800000", color.RGBA{128, 0, 0, 255}, false},
		{"#ABCDEF", color.RGBA{0xab, 0xcd, 0xef, 255}, false},
		{"00ffff", color.RGBA{}, true},
		{"#0ff", color.RGBA{}, true},
		{"#gg0000", color.RGBA{}, true},
		{"#12345g", color.RGBA{}, true},
		{"#1234 5", color.RGBA{}, true},
		{"#12 345", color.RGBA{}, true},
		{"#-12345", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.hex, func(t *testing.T) {
			got, err := ParseHexColor(tc.hex)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseHexColor(%q) returned nil error", tc.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q) error = %v", tc.hex, err)
			}
			if got != tc.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tc.hex, got, tc.want)
			}
		})
	}
}
