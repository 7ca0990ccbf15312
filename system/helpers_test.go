package system

import (
	"time"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
)

// seqRand returns scripted values modulo n, zero when empty
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

// scriptInput yields one queued direction per poll
type scriptInput struct {
	dirs []core.Direction
}

func (s *scriptInput) Poll() (core.Direction, bool) {
	if len(s.dirs) == 0 {
		return 0, false
	}
	d := s.dirs[0]
	s.dirs = s.dirs[1:]
	return d, true
}

func newTestWorld(width, height int32, boundary core.Boundary) (*engine.World, *scriptInput, *seqRand) {
	w := engine.NewWorld()
	w.Resources.Arena.Arena = core.Arena{Width: width, Height: height}
	w.Resources.Arena.Boundary = boundary
	in := &scriptInput{}
	rng := &seqRand{}
	w.Resources.Input.Source = in
	w.Resources.Rand.Source = rng
	return w, in, rng
}

func addAllSystems(w *engine.World) {
	w.AddSystem(NewMoveTimerSystem(w))
	w.AddSystem(NewMovementSystem(w))
	w.AddSystem(NewEatingSystem(w))
	w.AddSystem(NewGrowthSystem(w))
	w.AddSystem(NewGameOverSystem(w))
	w.AddSystem(NewFoodSpawnSystem(w))
	w.AddSystem(NewFoodDespawnSystem(w))
	w.AddSystem(NewFoodCountSystem(w))
}

// placeSnake replaces the snake with one occupying cells, head first
func placeSnake(w *engine.World, dir core.Direction, cells ...core.Point) {
	res := w.Resources
	w.DestroyBatch(res.Snake.Segments)

	head := w.CreateEntity()
	w.Components.Position.SetComponent(head, cells[0])
	w.Components.SnakeHead.SetComponent(head, component.SnakeHeadComponent{Direction: dir})
	w.Components.Sprite.SetComponent(head, component.SpriteComponent{Asset: core.AssetHead, Size: component.SizeHead})

	segments := []core.Entity{head}
	for _, c := range cells[1:] {
		segments = append(segments, createSegment(w, c))
	}
	res.Snake.Segments = segments
	res.Snake.HasLastTail = false
	res.Snake.SetInterval(res.Tuning.BaseInterval)
}

// placeFood creates a food item and bumps the live counter as the spawner would
func placeFood(w *engine.World, p core.Point, lifespan time.Duration) core.Entity {
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, p)
	w.Components.Food.SetComponent(e, component.FoodComponent{})
	w.Components.Lifespan.SetComponent(e, component.LifespanComponent{Timer: component.NewTimer(lifespan, false)})
	w.Components.Sprite.SetComponent(e, component.SpriteComponent{Asset: core.AssetFood, Size: component.SizeFood})
	w.Resources.Food.Count++
	return e
}

func countType(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
