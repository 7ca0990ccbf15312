package engine

import "github.com/lixenwraith/vi-snake/core"

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to manage all stores uniformly
type AnyStore interface {
	// RemoveEntity deletes the component owned by e, if any
	RemoveEntity(e core.Entity)

	// HasEntity checks if an entity has this component
	HasEntity(e core.Entity) bool

	// CountEntities returns the number of entities with this component
	CountEntities() int

	// ClearAllComponents removes all components from this store
	ClearAllComponents()
}

// Store is a generic container for a specific component type T
// Sparse set: map for lookup, dense slice for iteration
// Not safe for concurrent use; the tick goroutine owns all stores
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// RemoveEntity deletes a component from an entity
func (s *Store[T]) RemoveEntity(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			// Ordered delete keeps iteration deterministic for seeded runs
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// GetAllEntities returns a copy of all entities with this component type, in insertion order
func (s *Store[T]) GetAllEntities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}

// RemoveBatch deletes multiple entities in a single pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 || len(s.components) == 0 {
		return
	}

	toRemove := make(map[core.Entity]struct{}, len(entities))
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			toRemove[e] = struct{}{}
			delete(s.components, e)
		}
	}
	if len(toRemove) == 0 {
		return
	}

	writeIdx := 0
	for _, e := range s.entities {
		if _, remove := toRemove[e]; !remove {
			s.entities[writeIdx] = e
			writeIdx++
		}
	}
	s.entities = s.entities[:writeIdx]
}
