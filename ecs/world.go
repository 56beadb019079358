package ecs

import "sort"

// World manages all entities, their components and the systems run on them
type World struct {
	nextID     EntityID
	entities   map[EntityID]*Entity
	components map[EntityID]ComponentMap
	systems    []System
	// Tag-based entity lookup
	entityTags map[string]map[EntityID]bool
	events     *EventManager
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		entities:   make(map[EntityID]*Entity),
		components: make(map[EntityID]ComponentMap),
		entityTags: make(map[string]map[EntityID]bool),
		events:     NewEventManager(),
	}
}

// CreateEntity adds a new entity to the world
func (w *World) CreateEntity() *Entity {
	w.nextID++
	entity := newEntity(w.nextID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity with its tags and components
func (w *World) RemoveEntity(id EntityID) {
	entity, exists := w.entities[id]
	if !exists {
		return
	}
	for tag := range entity.Tags {
		delete(w.entityTags[tag], id)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}
	delete(w.components, id)
	delete(w.entities, id)
}

// GetEntity returns an entity by ID, or nil
func (w *World) GetEntity(id EntityID) *Entity {
	return w.entities[id]
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// AddComponent attaches a component; unknown entities are ignored
func (w *World) AddComponent(id EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[id]; !exists {
		return
	}
	w.components[id][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(id EntityID, componentID ComponentID) (Component, bool) {
	component, exists := w.components[id][componentID]
	return component, exists
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(id EntityID, componentID ComponentID) bool {
	_, exists := w.components[id][componentID]
	return exists
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(id EntityID, componentID ComponentID) {
	if componentMap, exists := w.components[id]; exists {
		delete(componentMap, componentID)
	}
}

// Get returns a component with its concrete type.
// ok is false when the component is missing or has another type.
func Get[T Component](w *World, id EntityID, componentID ComponentID) (T, bool) {
	var zero T
	component, exists := w.GetComponent(id, componentID)
	if !exists {
		return zero, false
	}
	typed, ok := component.(T)
	return typed, ok
}

// TagEntity adds a tag to an entity and indexes it
func (w *World) TagEntity(id EntityID, tag string) {
	entity, exists := w.entities[id]
	if !exists {
		return
	}
	entity.Tags[tag] = true
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][id] = true
}

// GetEntitiesWithTag returns tagged entities ordered by ID
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0, len(w.entityTags[tag]))
	for id := range w.entityTags[tag] {
		if entity, ok := w.entities[id]; ok {
			entities = append(entities, entity)
		}
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
	return entities
}

// FirstWithTag returns the lowest-ID entity carrying tag
func (w *World) FirstWithTag(tag string) (*Entity, bool) {
	entities := w.GetEntitiesWithTag(tag)
	if len(entities) == 0 {
		return nil, false
	}
	return entities[0], true
}

// AddSystem registers a system; systems run in registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// GetSystems returns all registered systems
func (w *World) GetSystems() []System {
	return w.systems
}

// Update runs every system once
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// Events returns the world's event manager
func (w *World) Events() *EventManager {
	return w.events
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.events.Emit(event)
}
