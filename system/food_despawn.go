package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// FoodDespawnSystem ages food and removes items whose lifespan ran out
type FoodDespawnSystem struct {
	world *engine.World

	// Telemetry
	statRotted *atomic.Int64
}

func NewFoodDespawnSystem(world *engine.World) engine.System {
	return &FoodDespawnSystem{
		world:      world,
		statRotted: world.Resources.Status.Ints.Get("food.rotted"),
	}
}

func (s *FoodDespawnSystem) Name() string {
	return "food_despawn"
}

func (s *FoodDespawnSystem) Priority() int {
	return parameter.PriorityFoodDespawn
}

func (s *FoodDespawnSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	lifespans := s.world.Components.Lifespan

	var rotten []core.Entity
	for _, e := range lifespans.GetAllEntities() {
		life, _ := lifespans.GetComponent(e)
		life.Timer.Tick(dt)
		if life.Timer.Finished() {
			rotten = append(rotten, e)
			continue
		}
		lifespans.SetComponent(e, life)
	}

	for _, e := range rotten {
		pos, _ := s.world.Components.Position.GetComponent(e)
		s.world.DestroyEntity(e)
		s.world.PushEvent(event.EventFoodRotted, &event.FoodPayload{Entity: e, Position: pos})
		s.statRotted.Add(1)
	}
}
