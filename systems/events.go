package systems

import (
	"ebiten-platformer/ecs"
)

// Event type constants
const (
	EventMovement     ecs.EventType = "movement"
	EventCameraUpdate ecs.EventType = "camera_update"
	EventLevelLoaded  ecs.EventType = "level_loaded"
	EventTraceStopped ecs.EventType = "trace_stopped"
)

// PlayerMoveEvent is emitted when the player position changes
type PlayerMoveEvent struct {
	EntityID     ecs.EntityID
	FromX, FromY float64
	ToX, ToY     float64
}

// Type returns the event type
func (e PlayerMoveEvent) Type() ecs.EventType {
	return EventMovement
}

// CameraUpdateEvent is emitted when the visible window scrolls
type CameraUpdateEvent struct {
	CameraID         ecs.EntityID
	OffsetX, OffsetY int
	Cols, Rows       int
	// Edges the view is pinned against
	AtLeft, AtRight, AtTop, AtBottom bool
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}

// LevelLoadedEvent is emitted once a level entity has been spawned
type LevelLoadedEvent struct {
	Name          string
	Width, Height int
}

// Type returns the event type
func (e LevelLoadedEvent) Type() ecs.EventType {
	return EventLevelLoaded
}

// TraceStoppedEvent is emitted when the frame trace gives up after a write error
type TraceStoppedEvent struct {
	Err error
}

// Type returns the event type
func (e TraceStoppedEvent) Type() ecs.EventType {
	return EventTraceStopped
}
