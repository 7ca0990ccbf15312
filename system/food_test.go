package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

func TestEatingGrowsAndSpeedsUp(t *testing.T) {
	w, _, _ := newTestWorld(15, 15, core.BoundaryWrap)
	addAllSystems(w)
	placeSnake(w, core.DirUp, core.Point{X: 7, Y: 7}, core.Point{X: 7, Y: 8})
	food := placeFood(w, core.Point{X: 7, Y: 6}, parameter.FoodLifespan)
	reader := w.Resources.Event.Bus.NewReader()

	w.Update(parameter.MoveIntervalBase)

	events := reader.Read()
	if n := countType(events, event.EventGrowth); n != 1 {
		t.Fatalf("Expected 1 Growth, got %d", n)
	}
	if w.Components.Food.HasEntity(food) {
		t.Error("Expected eaten food destroyed")
	}

	pos := w.SegmentPositions()
	if len(pos) != 3 {
		t.Fatalf("Expected length 3, got %d", len(pos))
	}
	if pos[2] != (core.Point{X: 7, Y: 8}) {
		t.Errorf("Expected new segment at old tail (7,8), got %s", pos[2])
	}
	if want := parameter.MoveIntervalBase - parameter.MoveIntervalStep; w.Resources.Snake.Interval != want {
		t.Errorf("Expected interval %v, got %v", want, w.Resources.Snake.Interval)
	}
	if w.Resources.Food.Count != 0 {
		t.Errorf("Expected food count 0, got %d", w.Resources.Food.Count)
	}
	if got := w.Resources.Status.Ints.Get("food.eaten").Load(); got != 1 {
		t.Errorf("Expected food.eaten=1, got %d", got)
	}
}

func TestGrowthAppliesEveryEvent(t *testing.T) {
	w, _, _ := newTestWorld(15, 15, core.BoundaryWrap)
	addAllSystems(w)
	placeSnake(w, core.DirUp, core.Point{X: 7, Y: 7}, core.Point{X: 7, Y: 8})

	w.PushEvent(event.EventGrowth, &event.GrowthPayload{})
	w.PushEvent(event.EventGrowth, &event.GrowthPayload{})
	w.Update(0)

	if n := len(w.Resources.Snake.Segments); n != 4 {
		t.Errorf("Expected length 4, got %d", n)
	}
	if want := parameter.MoveIntervalBase - 2*parameter.MoveIntervalStep; w.Resources.Snake.Interval != want {
		t.Errorf("Expected interval %v, got %v", want, w.Resources.Snake.Interval)
	}
}

func TestIntervalFloor(t *testing.T) {
	w, _, _ := newTestWorld(15, 15, core.BoundaryWrap)
	addAllSystems(w)
	placeSnake(w, core.DirUp, core.Point{X: 7, Y: 7}, core.Point{X: 7, Y: 8})
	w.Resources.Snake.SetInterval(20 * time.Millisecond)

	for i := 0; i < 3; i++ {
		w.PushEvent(event.EventGrowth, &event.GrowthPayload{})
		w.Update(0)
		if w.Resources.Snake.Interval < parameter.MoveIntervalMin {
			t.Fatalf("Expected interval >= %v, got %v", parameter.MoveIntervalMin, w.Resources.Snake.Interval)
		}
	}
	if w.Resources.Snake.Interval != parameter.MoveIntervalMin {
		t.Errorf("Expected interval at floor %v, got %v", parameter.MoveIntervalMin, w.Resources.Snake.Interval)
	}
}

func TestGrowthAtFloorKeepsMoveTimer(t *testing.T) {
	w, _, _ := newTestWorld(15, 15, core.BoundaryWrap)
	addAllSystems(w)
	placeSnake(w, core.DirUp, core.Point{X: 7, Y: 7}, core.Point{X: 7, Y: 8})
	snake := w.Resources.Snake
	snake.SetInterval(parameter.MoveIntervalMin)

	// Carry some elapsed time into the growth tick
	snake.MoveTimer.Elapsed = parameter.MoveIntervalMin / 2
	w.PushEvent(event.EventGrowth, &event.GrowthPayload{})
	w.Update(0)

	if len(snake.Segments) != 3 {
		t.Fatalf("Expected growth to 3 segments, got %d", len(snake.Segments))
	}
	if snake.MoveTimer.Elapsed != parameter.MoveIntervalMin/2 {
		t.Errorf("Expected move timer elapsed %v kept at the floor, got %v",
			parameter.MoveIntervalMin/2, snake.MoveTimer.Elapsed)
	}
}

func TestSpawnerPlacesFoodOnFreeCell(t *testing.T) {
	w, _, rng := newTestWorld(5, 5, core.BoundaryWrap)
	w.AddSystem(NewFoodSpawnSystem(w))
	w.AddSystem(NewFoodCountSystem(w))
	placeSnake(w, core.DirRight, core.Point{X: 0, Y: 0}, core.Point{X: 4, Y: 0})
	rng.vals = []int{0}

	w.Update(parameter.FoodSpawnPeriod)

	foods := w.Components.Food.GetAllEntities()
	if len(foods) != 1 {
		t.Fatalf("Expected 1 food, got %d", len(foods))
	}
	pos, _ := w.Components.Position.GetComponent(foods[0])
	if pos != (core.Point{X: 1, Y: 0}) {
		t.Errorf("Expected first free cell (1,0), got %s", pos)
	}
	if w.Resources.Food.Count != 1 {
		t.Errorf("Expected food count 1, got %d", w.Resources.Food.Count)
	}
	if !w.Components.Lifespan.HasEntity(foods[0]) || !w.Components.Sprite.HasEntity(foods[0]) {
		t.Error("Expected spawned food to carry lifespan and sprite")
	}
}

func TestSpawnerRespectsCeiling(t *testing.T) {
	w, _, _ := newTestWorld(15, 15, core.BoundaryWrap)
	w.AddSystem(NewFoodSpawnSystem(w))
	placeSnake(w, core.DirUp, core.Point{X: 7, Y: 7}, core.Point{X: 7, Y: 8})
	w.Resources.Food.Count = parameter.FoodCeiling
	reader := w.Resources.Event.Bus.NewReader()

	w.Update(parameter.FoodSpawnPeriod)

	if n := countType(reader.Read(), event.EventFoodSpawned); n != 0 {
		t.Errorf("Expected no spawn at ceiling, got %d", n)
	}
}

func TestSpawnerFullGridIsNoop(t *testing.T) {
	w, _, _ := newTestWorld(2, 1, core.BoundaryWrap)
	addAllSystems(w)
	placeSnake(w, core.DirRight, core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0})
	reader := w.Resources.Event.Bus.NewReader()

	w.Update(parameter.FoodSpawnPeriod)

	events := reader.Read()
	if n := countType(events, event.EventFoodSpawned); n != 0 {
		t.Errorf("Expected no spawn on a full grid, got %d", n)
	}
	if w.Components.Food.CountEntities() != 0 {
		t.Errorf("Expected no food entities, got %d", w.Components.Food.CountEntities())
	}
}

func TestSpawnedFoodNeverOverlaps(t *testing.T) {
	w, _, rng := newTestWorld(4, 4, core.BoundaryWrap)
	w.AddSystem(NewFoodSpawnSystem(w))
	w.AddSystem(NewFoodCountSystem(w))
	placeSnake(w, core.DirRight, core.Point{X: 1, Y: 1}, core.Point{X: 0, Y: 1})
	rng.vals = []int{3, 7, 1, 0, 5}

	for i := 0; i < parameter.FoodCeiling+2; i++ {
		w.Update(parameter.FoodSpawnPeriod)
	}

	seen := map[core.Point]bool{{X: 1, Y: 1}: true, {X: 0, Y: 1}: true}
	for _, e := range w.Components.Food.GetAllEntities() {
		pos, _ := w.Components.Position.GetComponent(e)
		if seen[pos] {
			t.Fatalf("Expected unique food cell, got duplicate %s", pos)
		}
		seen[pos] = true
	}
	if w.Resources.Food.Count > parameter.FoodCeiling {
		t.Errorf("Expected count <= %d, got %d", parameter.FoodCeiling, w.Resources.Food.Count)
	}
	if w.Resources.Food.Count != w.Components.Food.CountEntities() {
		t.Errorf("Expected count %d to match entities %d", w.Resources.Food.Count, w.Components.Food.CountEntities())
	}
}

func TestFoodRotsExactlyOnce(t *testing.T) {
	w, _, _ := newTestWorld(15, 15, core.BoundaryWrap)
	w.AddSystem(NewFoodDespawnSystem(w))
	w.AddSystem(NewFoodCountSystem(w))
	placeSnake(w, core.DirUp, core.Point{X: 7, Y: 7}, core.Point{X: 7, Y: 8})
	food := placeFood(w, core.Point{X: 0, Y: 0}, 5000*time.Millisecond)
	reader := w.Resources.Event.Bus.NewReader()

	rotted := 0
	steps := []time.Duration{1000, 1000, 1000, 1000, 1000, 1}
	for _, ms := range steps {
		w.Update(ms * time.Millisecond)
		rotted += countType(reader.Read(), event.EventFoodRotted)
	}
	for i := 0; i < 5; i++ {
		w.Update(time.Second)
		rotted += countType(reader.Read(), event.EventFoodRotted)
	}

	if rotted != 1 {
		t.Errorf("Expected exactly 1 FoodRotted, got %d", rotted)
	}
	if w.Components.Food.HasEntity(food) {
		t.Error("Expected rotten food destroyed")
	}
	if w.Resources.Food.Count != 0 {
		t.Errorf("Expected food count 0, got %d", w.Resources.Food.Count)
	}
}

func TestFoodCountClampsAtZero(t *testing.T) {
	w, _, _ := newTestWorld(15, 15, core.BoundaryWrap)
	w.AddSystem(NewFoodCountSystem(w))
	placeSnake(w, core.DirUp, core.Point{X: 7, Y: 7}, core.Point{X: 7, Y: 8})

	w.PushEvent(event.EventFoodRotted, &event.FoodPayload{})
	w.PushEvent(event.EventGrowth, &event.GrowthPayload{})
	w.Update(0)

	if w.Resources.Food.Count != 0 {
		t.Errorf("Expected count clamped at 0, got %d", w.Resources.Food.Count)
	}
}
