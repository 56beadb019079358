package systems

import (
	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
	"ebiten-platformer/viewport"
)

// CameraSystem keeps every camera centered on its target and clamped to the level
type CameraSystem struct {
	seen map[ecs.EntityID]bool
}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{seen: make(map[ecs.EntityID]bool)}
}

// Update moves cameras to their targets and recomputes the visible window
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	lvl, hasLevel := activeLevel(world)

	for _, cameraEntity := range world.GetEntitiesWithTag(components.TagCamera) {
		camera, ok := ecs.Get[*components.CameraComponent](world, cameraEntity.ID, components.Camera)
		if !ok {
			continue
		}

		if camera.Target != 0 {
			if target, ok := ecs.Get[*components.PositionComponent](world, camera.Target, components.Position); ok {
				camera.X, camera.Y = target.X, target.Y
			}
		}

		if !hasLevel {
			continue
		}

		oldX, oldY := camera.OffsetX, camera.OffsetY
		view := viewport.New(
			camera.X, camera.Y,
			camera.Cols, camera.Rows,
			lvl.Level.Width(), lvl.Level.Height(),
		)
		camera.OffsetX, camera.OffsetY = view.OffsetX, view.OffsetY

		if s.seen[cameraEntity.ID] && oldX == camera.OffsetX && oldY == camera.OffsetY {
			continue
		}
		s.seen[cameraEntity.ID] = true

		maxX := lvl.Level.Width() - camera.Cols
		maxY := lvl.Level.Height() - camera.Rows
		world.EmitEvent(CameraUpdateEvent{
			CameraID: cameraEntity.ID,
			OffsetX:  camera.OffsetX,
			OffsetY:  camera.OffsetY,
			Cols:     camera.Cols,
			Rows:     camera.Rows,
			AtLeft:   camera.OffsetX == 0,
			AtRight:  camera.OffsetX >= maxX,
			AtTop:    camera.OffsetY == 0,
			AtBottom: camera.OffsetY >= maxY,
		})
	}
}

// Viewport returns the current visible window of the first camera
func (s *CameraSystem) Viewport(world *ecs.World) (viewport.Viewport, bool) {
	cameraEntity, ok := world.FirstWithTag(components.TagCamera)
	if !ok {
		return viewport.Viewport{}, false
	}
	camera, ok := ecs.Get[*components.CameraComponent](world, cameraEntity.ID, components.Camera)
	if !ok {
		return viewport.Viewport{}, false
	}
	return viewport.Viewport{
		OffsetX: camera.OffsetX,
		OffsetY: camera.OffsetY,
		Cols:    camera.Cols,
		Rows:    camera.Rows,
	}, true
}
