package ecs

// EntityID is a unique identifier for an entity within a World.
// Zero is never assigned and means "no entity".
type EntityID uint64

// Entity is a handle plus a set of tags
type Entity struct {
	ID   EntityID
	Tags map[string]bool
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

// ComponentID identifies a component type
type ComponentID uint

// Component is any per-entity data
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component

// System is updated once per frame
type System interface {
	Update(world *World, dt float64)
}
