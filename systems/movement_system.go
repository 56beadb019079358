package systems

import (
	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
	"ebiten-platformer/viewport"
)

// Direction is one of the four movement directions
type Direction int

// Direction constants for movement
const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists every movable direction
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Controls reports which directions are currently held
type Controls interface {
	Held(dir Direction) bool
}

// MovementSystem moves the player while direction keys are held
type MovementSystem struct {
	controls Controls
}

// NewMovementSystem creates a movement system reading from controls
func NewMovementSystem(controls Controls) *MovementSystem {
	return &MovementSystem{controls: controls}
}

// Update applies held directions to the player
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	player, ok := world.FirstWithTag(components.TagPlayer)
	if !ok {
		return
	}
	position, ok := ecs.Get[*components.PositionComponent](world, player.ID, components.Position)
	if !ok {
		return
	}
	stats, ok := ecs.Get[*components.PlayerComponent](world, player.ID, components.Player)
	if !ok {
		return
	}

	dx, dy := s.heldDelta()
	if dx == 0 && dy == 0 {
		return
	}

	oldX, oldY := position.X, position.Y
	position.X += dx * stats.Speed * dt
	position.Y += dy * stats.Speed * dt
	keepInsideLevel(world, position)

	if position.X != oldX || position.Y != oldY {
		world.EmitEvent(PlayerMoveEvent{
			EntityID: player.ID,
			FromX:    oldX,
			FromY:    oldY,
			ToX:      position.X,
			ToY:      position.Y,
		})
	}
}

// heldDelta sums the unit vectors of every held direction.
// Opposite directions cancel out.
func (s *MovementSystem) heldDelta() (float64, float64) {
	if s.controls == nil {
		return 0, 0
	}
	dx, dy := 0.0, 0.0
	for _, dir := range Directions {
		if !s.controls.Held(dir) {
			continue
		}
		ddx, ddy := DeltaFromDirection(dir)
		dx += ddx
		dy += ddy
	}
	return dx, dy
}

// DeltaFromDirection converts a direction to a unit step
func DeltaFromDirection(dir Direction) (float64, float64) {
	switch dir {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// keepInsideLevel clamps the position to the active level's cells
func keepInsideLevel(world *ecs.World, position *components.PositionComponent) {
	lvl, ok := activeLevel(world)
	if !ok || lvl.Level.Width() == 0 || lvl.Level.Height() == 0 {
		return
	}
	position.X = viewport.Clamp(position.X, 0, float64(lvl.Level.Width()-1))
	position.Y = viewport.Clamp(position.Y, 0, float64(lvl.Level.Height()-1))
}

// activeLevel returns the level component of the first level entity
func activeLevel(world *ecs.World) (*components.LevelComponent, bool) {
	entity, ok := world.FirstWithTag(components.TagLevel)
	if !ok {
		return nil, false
	}
	return ecs.Get[*components.LevelComponent](world, entity.ID, components.LevelMap)
}
