// Package render draws the world with ebiten.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-platformer/components"
	"ebiten-platformer/config"
	"ebiten-platformer/ecs"
	"ebiten-platformer/systems"
	"ebiten-platformer/viewport"
)

// RenderSystem draws the visible tiles and the player as filled rectangles
type RenderSystem struct {
	tileSize     int
	palette      config.Palette
	cameraSystem *systems.CameraSystem
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(tileSize int, palette config.Palette, cameraSystem *systems.CameraSystem) *RenderSystem {
	return &RenderSystem{
		tileSize:     tileSize,
		palette:      palette,
		cameraSystem: cameraSystem,
	}
}

// TileColor returns the fill color for a map character
func TileColor(ch byte, palette config.Palette) color.RGBA {
	switch ch {
	case '#':
		return palette.Ground
	default:
		// air and anything unrecognised
		return palette.Air
	}
}

// Draw renders the level window and the player
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(s.palette.Background)

	levelEntity, ok := world.FirstWithTag(components.TagLevel)
	if !ok {
		return
	}
	lvl, ok := ecs.Get[*components.LevelComponent](world, levelEntity.ID, components.LevelMap)
	if !ok {
		return
	}
	view, ok := s.cameraSystem.Viewport(world)
	if !ok {
		return
	}

	size := float32(s.tileSize)
	for x := 0; x < view.Cols; x++ {
		for y := 0; y < view.Rows; y++ {
			wx, wy := view.ScreenToWorld(x, y)
			clr := TileColor(lvl.Level.TileChar(wx, wy), s.palette)
			vector.DrawFilledRect(screen, float32(x)*size, float32(y)*size, size, size, clr, false)
		}
	}

	s.drawPlayer(world, screen, view)
}

// PlayerRect returns the top-left screen pixel of the player's rectangle.
// ok is false when the player's tile is outside the viewport.
func PlayerRect(view viewport.Viewport, pos *components.PositionComponent, tileSize int) (x, y float32, ok bool) {
	tx, ty := pos.TileX(), pos.TileY()
	if !view.Contains(tx, ty) {
		return 0, 0, false
	}
	sx, sy := view.WorldToScreen(tx, ty)
	size := float32(tileSize)
	x = (float32(sx) + float32(pos.X-float64(tx))) * size
	y = (float32(sy) + float32(pos.Y-float64(ty))) * size
	return x, y, true
}

func (s *RenderSystem) drawPlayer(world *ecs.World, screen *ebiten.Image, view viewport.Viewport) {
	player, ok := world.FirstWithTag(components.TagPlayer)
	if !ok {
		return
	}
	pos, ok := ecs.Get[*components.PositionComponent](world, player.ID, components.Position)
	if !ok {
		return
	}
	px, py, ok := PlayerRect(view, pos, s.tileSize)
	if !ok {
		return
	}
	clr := s.palette.Player
	if rend, ok := ecs.Get[*components.RenderableComponent](world, player.ID, components.Renderable); ok {
		clr = rend.Color
	}

	size := float32(s.tileSize)
	vector.DrawFilledRect(screen, px, py, size, size, clr, false)
}
