// Package preview prints levels to a terminal without opening a window.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ebiten-platformer/config"
	"ebiten-platformer/level"
)

// SpawnMarker marks the player spawn in previews
const SpawnMarker = '@'

// Printer renders levels as colored text blocks
type Printer struct {
	ground lipgloss.Style
	air    lipgloss.Style
	spawn  lipgloss.Style
	plain  bool
}

// New creates a printer using the palette colors. A nil renderer uses the
// default one bound to stdout.
func New(r *lipgloss.Renderer, palette config.PaletteConfig, plain bool) *Printer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Printer{
		ground: r.NewStyle().Background(lipgloss.Color(palette.Ground)).Foreground(lipgloss.Color(palette.Ground)),
		air:    r.NewStyle().Background(lipgloss.Color(palette.Air)).Foreground(lipgloss.Color(palette.Air)),
		spawn:  r.NewStyle().Background(lipgloss.Color(palette.Air)).Foreground(lipgloss.Color(palette.Player)).Bold(true),
		plain:  plain,
	}
}

// Render returns the level as one line per row with the spawn marked
func (p *Printer) Render(def *level.Definition) string {
	lvl := def.Level
	var b strings.Builder
	for y := 0; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			b.WriteString(p.cell(def, x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *Printer) cell(def *level.Definition, x, y int) string {
	ch := def.Level.TileChar(x, y)
	if x == def.Spawn.X && y == def.Spawn.Y {
		if p.plain {
			return string(SpawnMarker)
		}
		return p.spawn.Render(string(SpawnMarker))
	}
	if p.plain {
		return string(ch)
	}
	if ch == '#' {
		return p.ground.Render(string(ch))
	}
	return p.air.Render(string(ch))
}

// Summary describes a level in one line
func Summary(def *level.Definition) string {
	lvl := def.Level
	return fmt.Sprintf("%s %dx%d spawn (%d,%d) ground %d air %d",
		def.Name, lvl.Width(), lvl.Height(), def.Spawn.X, def.Spawn.Y,
		lvl.Count(level.TileGround), lvl.Count(level.TileAir))
}
