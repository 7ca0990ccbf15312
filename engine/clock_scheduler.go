package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// TickFunc advances the game by dt
type TickFunc func(dt time.Duration)

// ClockScheduler drives the tick function on a fixed frame interval
// Elapsed time is measured with a TimeProvider and clamped to MaxFrameDelta
// While paused no ticks run and the paused gap is never reported as elapsed time
type ClockScheduler struct {
	clock    TimeProvider
	interval time.Duration
	tick     TickFunc

	mu       sync.Mutex
	lastTime time.Time
	frameFn  func()

	isPaused atomic.Bool

	// Cached metric pointers
	statTicks  *atomic.Int64
	statPaused *atomic.Bool
}

// NewClockScheduler creates a scheduler; a non-positive interval selects parameter.FrameInterval
func NewClockScheduler(clock TimeProvider, interval time.Duration, tick TickFunc, reg *status.Registry) *ClockScheduler {
	if interval <= 0 {
		interval = parameter.FrameInterval
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &ClockScheduler{
		clock:      clock,
		interval:   interval,
		tick:       tick,
		lastTime:   clock.Now(),
		statTicks:  reg.Ints.Get("engine.ticks"),
		statPaused: reg.Bools.Get("game.paused"),
	}
}

// SetFrameHook registers a callback invoked after every step, paused steps included
// Used by the front end to render and broadcast
func (cs *ClockScheduler) SetFrameHook(fn func()) {
	cs.mu.Lock()
	cs.frameFn = fn
	cs.mu.Unlock()
}

// Step runs one tick with the time elapsed since the previous step
// Returns false when paused; the frame hook still runs so overlays stay drawn
func (cs *ClockScheduler) Step() bool {
	cs.mu.Lock()
	now := cs.clock.Now()
	if cs.isPaused.Load() {
		cs.lastTime = now
		frameFn := cs.frameFn
		cs.mu.Unlock()
		if frameFn != nil {
			frameFn()
		}
		return false
	}

	dt := now.Sub(cs.lastTime)
	cs.lastTime = now
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	frameFn := cs.frameFn
	cs.mu.Unlock()

	cs.tick(dt)
	cs.statTicks.Add(1)

	if frameFn != nil {
		frameFn()
	}
	return true
}

// Pause freezes game time
func (cs *ClockScheduler) Pause() {
	cs.isPaused.Store(true)
	cs.statPaused.Store(true)
}

// Resume continues game time from the moment of resume
func (cs *ClockScheduler) Resume() {
	if cs.isPaused.CompareAndSwap(true, false) {
		cs.mu.Lock()
		cs.lastTime = cs.clock.Now()
		cs.mu.Unlock()
	}
	cs.statPaused.Store(false)
}

// TogglePause flips the pause state and returns the new state
func (cs *ClockScheduler) TogglePause() bool {
	if cs.isPaused.Load() {
		cs.Resume()
		return false
	}
	cs.Pause()
	return true
}

// IsPaused returns current pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// Run steps the scheduler on a ticker until ctx is cancelled
func (cs *ClockScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(cs.interval)
	defer ticker.Stop()

	cs.mu.Lock()
	cs.lastTime = cs.clock.Now()
	cs.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cs.Step()
		}
	}
}
