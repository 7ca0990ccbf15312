package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// FoodSpawnSystem places one food item per spawn period while under the ceiling
type FoodSpawnSystem struct {
	world *engine.World

	// Telemetry
	statSpawned *atomic.Int64
}

func NewFoodSpawnSystem(world *engine.World) engine.System {
	return &FoodSpawnSystem{
		world:       world,
		statSpawned: world.Resources.Status.Ints.Get("food.spawned"),
	}
}

func (s *FoodSpawnSystem) Name() string {
	return "food_spawn"
}

func (s *FoodSpawnSystem) Priority() int {
	return parameter.PriorityFoodSpawn
}

func (s *FoodSpawnSystem) Update() {
	res := s.world.Resources
	res.Food.SpawnTimer.Tick(res.Time.DeltaTime)
	if !res.Food.SpawnTimer.Finished() {
		return
	}
	if res.Food.Count >= res.Tuning.FoodCeiling {
		return
	}

	free := res.Arena.FreeCells(s.occupied())
	if len(free) == 0 {
		return
	}
	pos := free[res.Rand.Source.Intn(len(free))]

	e := s.world.CreateEntity()
	s.world.Components.Position.SetComponent(e, pos)
	s.world.Components.Food.SetComponent(e, component.FoodComponent{})
	s.world.Components.Lifespan.SetComponent(e, component.LifespanComponent{
		Timer: component.NewTimer(res.Tuning.FoodLifespan, false),
	})
	s.world.Components.Sprite.SetComponent(e, component.SpriteComponent{
		Asset: core.AssetFood,
		Size:  component.SizeFood,
	})

	s.world.PushEvent(event.EventFoodSpawned, &event.FoodPayload{Entity: e, Position: pos})
	s.statSpawned.Add(1)
}

// occupied collects snake and food cells
func (s *FoodSpawnSystem) occupied() map[core.Point]struct{} {
	cells := make(map[core.Point]struct{})
	for _, p := range s.world.SegmentPositions() {
		cells[p] = struct{}{}
	}
	for _, e := range s.world.Components.Food.GetAllEntities() {
		if p, ok := s.world.Components.Position.GetComponent(e); ok {
			cells[p] = struct{}{}
		}
	}
	return cells
}
