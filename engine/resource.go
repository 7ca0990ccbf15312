package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// Resource holds singleton game state, one owner system per mutable field
type Resource struct {
	Time   *TimeResource
	Arena  *ArenaResource
	Tuning *TuningResource
	Snake  *SnakeResource
	Food   *FoodResource
	Game   *GameResource
	Event  *EventResource
	Input  *InputResource
	Rand   *RandResource

	// Telemetry
	Status *status.Registry
}

// TimeResource wraps per-tick time data for systems
// Updated by World.Update before any system runs
type TimeResource struct {
	// DeltaTime is the elapsed game time since the previous tick
	DeltaTime time.Duration

	// GameTime is the accumulated game time since start
	GameTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(dt time.Duration, frame int64) {
	tr.DeltaTime = dt
	tr.GameTime += dt
	tr.FrameNumber = frame
}

// ArenaResource holds the grid bounds and boundary policy
type ArenaResource struct {
	core.Arena
	Boundary core.Boundary
}

// TuningResource holds gameplay constants resolved from configuration
type TuningResource struct {
	BaseInterval    time.Duration
	IntervalStep    time.Duration
	MinInterval     time.Duration
	FoodCeiling     int
	FoodLifespan    time.Duration
	FoodSpawnPeriod time.Duration
}

// DefaultTuning returns the stock gameplay constants
func DefaultTuning() TuningResource {
	return TuningResource{
		BaseInterval:    parameter.MoveIntervalBase,
		IntervalStep:    parameter.MoveIntervalStep,
		MinInterval:     parameter.MoveIntervalMin,
		FoodCeiling:     parameter.FoodCeiling,
		FoodLifespan:    parameter.FoodLifespan,
		FoodSpawnPeriod: parameter.FoodSpawnPeriod,
	}
}

// SnakeResource holds the ordered segment list and movement bookkeeping
type SnakeResource struct {
	// Segments lists segment entities head first; non-empty after spawn
	Segments []core.Entity

	// LastTail is the tail cell before the most recent move, consumed by growth
	LastTail    core.Point
	HasLastTail bool

	// Interval is the current move period, MoveTimer fires at that period
	Interval  time.Duration
	MoveTimer component.Timer
}

// Head returns the head entity, panics on an empty snake (invariant violation)
func (s *SnakeResource) Head() core.Entity {
	if len(s.Segments) == 0 {
		panic("snake: segment list is empty")
	}
	return s.Segments[0]
}

// Tail returns the last segment entity
func (s *SnakeResource) Tail() core.Entity {
	if len(s.Segments) == 0 {
		panic("snake: segment list is empty")
	}
	return s.Segments[len(s.Segments)-1]
}

// SetInterval changes the move period and rebuilds the move timer
func (s *SnakeResource) SetInterval(d time.Duration) {
	s.Interval = d
	s.MoveTimer = component.NewTimer(d, true)
}

// FoodResource holds the live food counter and the spawn timer
type FoodResource struct {
	Count      int
	SpawnTimer component.Timer
}

// GameResource tracks round bookkeeping
type GameResource struct {
	Round      int
	RoundID    string
	BestLength int
}

// EventResource wraps the event bus for systems access
type EventResource struct {
	Bus *event.Bus
}

// InputSource yields the direction requested by the player since the last poll
type InputSource interface {
	Poll() (core.Direction, bool)
}

// NoInput never requests a direction change
type NoInput struct{}

// Poll implements InputSource
func (NoInput) Poll() (core.Direction, bool) { return 0, false }

// InputResource wraps the external input collaborator
type InputResource struct {
	Source InputSource
}

// RandResource wraps the uniform random source
type RandResource struct {
	Source core.Rand
}
