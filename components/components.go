package components

import (
	"image/color"

	"ebiten-platformer/ecs"
	"ebiten-platformer/level"
)

// PositionComponent stores a position in tile units
type PositionComponent struct {
	X, Y float64
}

// TileX returns the column the position falls in
func (p *PositionComponent) TileX() int {
	return int(p.X)
}

// TileY returns the row the position falls in
func (p *PositionComponent) TileY() int {
	return int(p.Y)
}

// PlayerComponent marks the entity driven by keyboard input
type PlayerComponent struct {
	Speed float64 // tiles per second
}

// NameComponent is a display name shown in messages and the debug overlay
type NameComponent struct {
	Name string
}

// RenderableComponent stores how an entity is drawn
type RenderableComponent struct {
	Color color.RGBA
}

// LevelComponent holds the active tile grid
type LevelComponent struct {
	Name  string
	Level *level.Level
}

// CameraComponent follows a target and caches the clamped viewport offset
type CameraComponent struct {
	Target           ecs.EntityID
	X, Y             float64 // camera center in tiles
	OffsetX, OffsetY int     // top-left visible tile
	Cols, Rows       int     // visible tiles
}

// NewCameraComponent creates a camera following target
func NewCameraComponent(target ecs.EntityID, cols, rows int) *CameraComponent {
	return &CameraComponent{
		Target: target,
		Cols:   cols,
		Rows:   rows,
	}
}
