package components

import (
	"ebiten-platformer/ecs"
)

// Component IDs used by the platformer
const (
	Position ecs.ComponentID = iota
	Player
	Camera
	LevelMap
	Renderable
	Name
)

// Entity tags
const (
	TagPlayer = "player"
	TagCamera = "camera"
	TagLevel  = "level"
)
