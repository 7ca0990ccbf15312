package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// GrowthSystem appends a segment per Growth event and speeds the snake up
// Every Growth event of the tick is applied, not only the first
type GrowthSystem struct {
	world  *engine.World
	events *eventCursor

	// Telemetry
	statLength   *atomic.Int64
	statInterval *atomic.Int64
}

func NewGrowthSystem(world *engine.World) engine.System {
	return &GrowthSystem{
		world:        world,
		events:       newEventCursor(world),
		statLength:   world.Resources.Status.Ints.Get("snake.length"),
		statInterval: world.Resources.Status.Ints.Get("snake.interval_ms"),
	}
}

func (s *GrowthSystem) Name() string {
	return "growth"
}

func (s *GrowthSystem) Priority() int {
	return parameter.PriorityGrowth
}

func (s *GrowthSystem) Update() {
	snake := s.world.Resources.Snake
	before := snake.Interval

	grown := 0
	for _, ev := range s.events.read() {
		if ev.Type == event.EventGrowth {
			s.grow()
			grown++
		}
	}
	if grown == 0 {
		return
	}

	// At the floor the running timer keeps its overshoot
	if snake.Interval != before {
		snake.SetInterval(snake.Interval)
	}

	s.statLength.Store(int64(len(snake.Segments)))
	s.statInterval.Store(snake.Interval.Milliseconds())
}

// grow adds one segment at the last tail cell and shrinks the interval by one step
func (s *GrowthSystem) grow() {
	snake := s.world.Resources.Snake
	tuning := s.world.Resources.Tuning

	tail := snake.LastTail
	if !snake.HasLastTail {
		tail, _ = s.world.Components.Position.GetComponent(snake.Tail())
	}
	snake.Segments = append(snake.Segments, createSegment(s.world, tail))

	if snake.Interval >= tuning.MinInterval+tuning.IntervalStep {
		snake.Interval -= tuning.IntervalStep
	}
	if snake.Interval < tuning.MinInterval {
		snake.Interval = tuning.MinInterval
	}
}
