package ecs

import (
	"cmp"
	"slices"
)

// World manages all entities and components of the loaded level
type World struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	systems    []System
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	w := &World{}
	w.Clear()
	return w
}

// Clear removes every entity, e.g. before loading the next level.
// Systems stay registered and entity IDs keep counting up.
func (w *World) Clear() {
	w.entities = make(map[EntityID]*Entity)
	w.components = make(map[EntityID]ComponentMap)
	w.entityTags = make(map[string]map[EntityID]bool)
}

// CreateEntity creates a new entity with the given tags and adds it to the world
func (w *World) CreateEntity(tags ...string) *Entity {
	w.nextID++
	entity := newEntity(w.nextID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	for _, tag := range tags {
		w.TagEntity(entity.ID, tag)
	}
	return entity
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// AddComponent adds a component to an entity. Unknown entities are ignored.
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	component, exists := w.components[entityID][componentID]
	return component, exists
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, exists := w.components[entityID][componentID]
	return exists
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.Tags[tag] = true
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, oldest first
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0, len(w.entityTags[tag]))
	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}
	sortByID(entities)
	return entities
}

// GetEntitiesWithComponents returns all entities holding every listed component, oldest first
func (w *World) GetEntitiesWithComponents(componentIDs ...ComponentID) []*Entity {
	entities := make([]*Entity, 0)
	for id, componentMap := range w.components {
		if hasAll(componentMap, componentIDs) {
			entities = append(entities, w.entities[id])
		}
	}
	sortByID(entities)
	return entities
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// GetEntity returns an entity by its ID, or nil
func (w *World) GetEntity(entityID EntityID) *Entity {
	return w.entities[entityID]
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update updates all systems in the world in registration order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

func hasAll(componentMap ComponentMap, componentIDs []ComponentID) bool {
	for _, id := range componentIDs {
		if _, ok := componentMap[id]; !ok {
			return false
		}
	}
	return true
}

// Map iteration order is random; callers draw and test against a stable order
func sortByID(entities []*Entity) {
	slices.SortFunc(entities, func(a, b *Entity) int {
		return cmp.Compare(a.ID, b.ID)
	})
}
