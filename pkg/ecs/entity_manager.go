// Package ecs provides the entity store behind the editor.
//
// Entities are plain IDs; components are pure data structs keyed by their
// dynamic type. IDs are never reused, so an ID captured before an
// asynchronous operation still names the same entity (or nothing) when the
// operation completes.
package ecs

import (
	"reflect"
	"sort"
)

// EntityID is the unique identifier of an entity. Zero is never issued.
type EntityID uint64

// EntityManager owns every entity and its components.
type EntityManager struct {
	nextID uint64
	// EntityID -> component type -> component instance
	components map[EntityID]map[reflect.Type]any
	// entities marked for removal by DestroyEntity
	entitiesToDestroy []EntityID
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // 0 is reserved as the invalid ID
		components:        make(map[EntityID]map[reflect.Type]any),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity creates a new entity and returns its ID.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity marks an entity for removal. The entity stays readable
// until RemoveMarkedEntities runs.
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities removes every entity marked by DestroyEntity.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// Exists reports whether id names a live entity.
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// Count returns the number of live entities.
func (em *EntityManager) Count() int {
	return len(em.components)
}

// AddComponent attaches component to the entity, replacing any component
// of the same type. Adding to an unknown entity is a no-op.
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent detaches the component of the given type.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// getComponent returns the component of the given type.
func (em *EntityManager) getComponent(id EntityID, componentType reflect.Type) (any, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// entitiesWith returns the IDs of entities owning every listed type,
// ordered by ID so callers iterate deterministically.
func (em *EntityManager) entitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// GetComponent returns the entity's component of type T.
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.getComponent(id, reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent reports whether the entity owns a component of type T.
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := em.getComponent(id, reflect.TypeOf((*T)(nil)).Elem())
	return ok
}

// GetEntitiesWith1 returns the entities owning a component of type T1.
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.entitiesWith(reflect.TypeOf((*T1)(nil)).Elem())
}

// GetEntitiesWith2 returns the entities owning components of types T1 and T2.
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.entitiesWith(reflect.TypeOf((*T1)(nil)).Elem(), reflect.TypeOf((*T2)(nil)).Elem())
}

// AddComponent is the type-checked form of EntityManager.AddComponent.
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}
