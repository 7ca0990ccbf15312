package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// ComponentStore groups the typed component stores
type ComponentStore struct {
	Position  *Store[core.Point]
	SnakeHead *Store[component.SnakeHeadComponent]
	Segment   *Store[component.SegmentComponent]
	Food      *Store[component.FoodComponent]
	Lifespan  *Store[component.LifespanComponent]
	Sprite    *Store[component.SpriteComponent]
}

// all returns every store for type-erased lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{cs.Position, cs.SnakeHead, cs.Segment, cs.Food, cs.Lifespan, cs.Sprite}
}

// World contains all entities, their components, the resources and the systems
// Owned by a single goroutine; nothing in it is locked
type World struct {
	nextEntityID core.Entity
	frame        int64

	Components ComponentStore
	Resources  Resource

	systems []System
}

// NewWorld creates a world with default resources
// Callers replace Arena/Tuning/Input/Rand before spawning entities
func NewWorld() *World {
	tuning := DefaultTuning()
	w := &World{
		nextEntityID: 1,
		Components: ComponentStore{
			Position:  NewStore[core.Point](),
			SnakeHead: NewStore[component.SnakeHeadComponent](),
			Segment:   NewStore[component.SegmentComponent](),
			Food:      NewStore[component.FoodComponent](),
			Lifespan:  NewStore[component.LifespanComponent](),
			Sprite:    NewStore[component.SpriteComponent](),
		},
		Resources: Resource{
			Time: &TimeResource{},
			Arena: &ArenaResource{
				Arena:    core.Arena{Width: parameter.ArenaWidth, Height: parameter.ArenaHeight},
				Boundary: core.BoundaryWrap,
			},
			Tuning: &tuning,
			Snake:  &SnakeResource{},
			Food: &FoodResource{
				SpawnTimer: component.NewTimer(tuning.FoodSpawnPeriod, true),
			},
			Game:   &GameResource{},
			Event:  &EventResource{Bus: event.NewBus()},
			Input:  &InputResource{Source: NoInput{}},
			Rand:   &RandResource{},
			Status: status.NewRegistry(),
		},
		systems: make([]System, 0, 8),
	}
	w.Resources.Snake.SetInterval(tuning.BaseInterval)
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.RemoveEntity(e)
	}
}

// DestroyBatch removes all components of the given entities
func (w *World) DestroyBatch(entities []core.Entity) {
	w.Components.Position.RemoveBatch(entities)
	w.Components.SnakeHead.RemoveBatch(entities)
	w.Components.Segment.RemoveBatch(entities)
	w.Components.Food.RemoveBatch(entities)
	w.Components.Lifespan.RemoveBatch(entities)
	w.Components.Sprite.RemoveBatch(entities)
}

// ClearEntities drops every component of every entity; IDs keep increasing
func (w *World) ClearEntities() {
	for _, s := range w.Components.all() {
		s.ClearAllComponents()
	}
}

// EntityCount returns the number of entities holding a position
func (w *World) EntityCount() int {
	return w.Components.Position.CountEntities()
}

// AddSystem adds a system and keeps the list sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs one tick: time resource, event retention window, then every system in order
func (w *World) Update(dt time.Duration) {
	w.frame++
	w.Resources.Time.Update(dt, w.frame)
	w.Resources.Event.Bus.Update()

	for _, system := range w.systems {
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.frame
}

// PushEvent publishes a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Bus.Emit(eventType, payload, w.frame)
}

// SegmentPositions returns the snake cells head first
func (w *World) SegmentPositions() []core.Point {
	segments := w.Resources.Snake.Segments
	out := make([]core.Point, 0, len(segments))
	for _, e := range segments {
		if pos, ok := w.Components.Position.GetComponent(e); ok {
			out = append(out, pos)
		}
	}
	return out
}
