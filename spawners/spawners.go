package spawners

import (
	"fmt"
	"image/color"

	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
	"ebiten-platformer/level"
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world      *ecs.World
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		logMessage: logFunc,
	}
}

// CreateLevel creates the entity holding the tile grid
func (s *EntitySpawner) CreateLevel(def *level.Definition) *ecs.Entity {
	levelEntity := s.world.CreateEntity()
	s.world.TagEntity(levelEntity.ID, components.TagLevel)
	s.world.AddComponent(levelEntity.ID, components.LevelMap, &components.LevelComponent{
		Name:  def.Name,
		Level: def.Level,
	})
	s.world.AddComponent(levelEntity.ID, components.Name, &components.NameComponent{Name: def.Name})
	return levelEntity
}

// CreatePlayer creates a player entity at the given tile
func (s *EntitySpawner) CreatePlayer(x, y int, speed float64, clr color.RGBA) *ecs.Entity {
	playerEntity := s.world.CreateEntity()
	s.world.TagEntity(playerEntity.ID, components.TagPlayer)

	s.world.AddComponent(playerEntity.ID, components.Position, &components.PositionComponent{
		X: float64(x),
		Y: float64(y),
	})
	s.world.AddComponent(playerEntity.ID, components.Player, &components.PlayerComponent{Speed: speed})
	s.world.AddComponent(playerEntity.ID, components.Renderable, &components.RenderableComponent{Color: clr})
	s.world.AddComponent(playerEntity.ID, components.Name, &components.NameComponent{Name: "Player"})

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("Player created at %d,%d", x, y))
	}
	return playerEntity
}

// CreateCamera creates a camera entity following target
func (s *EntitySpawner) CreateCamera(target ecs.EntityID, cols, rows int) *ecs.Entity {
	cameraEntity := s.world.CreateEntity()
	s.world.TagEntity(cameraEntity.ID, components.TagCamera)

	cameraComp := components.NewCameraComponent(target, cols, rows)
	if pos, ok := ecs.Get[*components.PositionComponent](s.world, target, components.Position); ok {
		cameraComp.X, cameraComp.Y = pos.X, pos.Y
	}
	s.world.AddComponent(cameraEntity.ID, components.Camera, cameraComp)
	return cameraEntity
}
