package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// FoodCountSystem maintains the live food counter from events
//
// FoodSpawned increments, Growth and FoodRotted decrement (never below zero), GameOver zeroes
type FoodCountSystem struct {
	world  *engine.World
	events *eventCursor

	// Telemetry
	statLive *atomic.Int64
}

func NewFoodCountSystem(world *engine.World) engine.System {
	return &FoodCountSystem{
		world:    world,
		events:   newEventCursor(world),
		statLive: world.Resources.Status.Ints.Get("food.live"),
	}
}

func (s *FoodCountSystem) Name() string {
	return "food_count"
}

func (s *FoodCountSystem) Priority() int {
	return parameter.PriorityFoodCount
}

func (s *FoodCountSystem) Update() {
	food := s.world.Resources.Food
	for _, ev := range s.events.read() {
		switch ev.Type {
		case event.EventFoodSpawned:
			food.Count++
		case event.EventGrowth, event.EventFoodRotted:
			if food.Count > 0 {
				food.Count--
			}
		case event.EventGameOver:
			food.Count = 0
		}
	}
	s.statLive.Store(int64(food.Count))
}
