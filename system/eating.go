package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// EatingSystem consumes food under the head on move ticks
type EatingSystem struct {
	world *engine.World

	// Telemetry
	statEaten *atomic.Int64
}

func NewEatingSystem(world *engine.World) engine.System {
	return &EatingSystem{
		world:     world,
		statEaten: world.Resources.Status.Ints.Get("food.eaten"),
	}
}

func (s *EatingSystem) Name() string {
	return "eating"
}

func (s *EatingSystem) Priority() int {
	return parameter.PriorityEating
}

func (s *EatingSystem) Update() {
	res := s.world.Resources
	if !res.Snake.MoveTimer.Finished() {
		return
	}

	headPos, ok := s.world.Components.Position.GetComponent(res.Snake.Head())
	if !ok {
		return
	}

	for _, e := range s.world.Components.Food.GetAllEntities() {
		pos, ok := s.world.Components.Position.GetComponent(e)
		if !ok || pos != headPos {
			continue
		}
		s.world.DestroyEntity(e)
		s.world.PushEvent(event.EventGrowth, &event.GrowthPayload{Food: e, Position: pos})
		s.statEaten.Add(1)
	}
}
