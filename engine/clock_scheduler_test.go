package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

func newTestScheduler() (*ClockScheduler, *ManualTimeProvider, *[]time.Duration, *status.Registry) {
	mock := NewManualTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	var ticks []time.Duration
	reg := status.NewRegistry()
	cs := NewClockScheduler(mock, 16*time.Millisecond, func(dt time.Duration) {
		ticks = append(ticks, dt)
	}, reg)
	return cs, mock, &ticks, reg
}

func TestClockSchedulerStepMeasuresElapsed(t *testing.T) {
	cs, mock, ticks, reg := newTestScheduler()

	mock.Advance(20 * time.Millisecond)
	cs.Step()
	mock.Advance(5 * time.Millisecond)
	cs.Step()

	if len(*ticks) != 2 {
		t.Fatalf("Expected 2 ticks, got %d", len(*ticks))
	}
	if (*ticks)[0] != 20*time.Millisecond || (*ticks)[1] != 5*time.Millisecond {
		t.Errorf("Expected [20ms 5ms], got %v", *ticks)
	}
	if got := reg.Ints.Get("engine.ticks").Load(); got != 2 {
		t.Errorf("Expected engine.ticks=2, got %d", got)
	}
}

func TestClockSchedulerClampsLargeDelta(t *testing.T) {
	cs, mock, ticks, _ := newTestScheduler()

	mock.Advance(10 * time.Second)
	cs.Step()

	if (*ticks)[0] != parameter.MaxFrameDelta {
		t.Errorf("Expected clamp to %v, got %v", parameter.MaxFrameDelta, (*ticks)[0])
	}
}

func TestClockSchedulerPauseSkipsGap(t *testing.T) {
	cs, mock, ticks, reg := newTestScheduler()

	if !cs.TogglePause() {
		t.Fatal("Expected paused after toggle")
	}
	if !reg.Bools.Get("game.paused").Load() {
		t.Error("Expected game.paused metric set")
	}
	mock.Advance(time.Second)
	if cs.Step() {
		t.Error("Expected Step to report no tick while paused")
	}

	mock.Advance(time.Second)
	cs.Resume()
	mock.Advance(10 * time.Millisecond)
	cs.Step()

	if len(*ticks) != 1 {
		t.Fatalf("Expected 1 tick, got %d", len(*ticks))
	}
	if (*ticks)[0] != 10*time.Millisecond {
		t.Errorf("Expected 10ms after resume, got %v", (*ticks)[0])
	}
}

func TestClockSchedulerFrameHook(t *testing.T) {
	cs, mock, ticks, _ := newTestScheduler()
	calls := 0
	cs.SetFrameHook(func() { calls++ })

	mock.Advance(time.Millisecond)
	cs.Step()
	cs.Pause()
	mock.Advance(time.Millisecond)
	cs.Step()

	if calls != 2 {
		t.Errorf("Expected hook on every step, got %d calls", calls)
	}
	if len(*ticks) != 1 {
		t.Errorf("Expected paused step to skip the tick, got %d ticks", len(*ticks))
	}
}

func TestClockSchedulerRunStopsOnCancel(t *testing.T) {
	clock := NewMonotonicTimeProvider()
	ticked := make(chan struct{}, 1)
	cs := NewClockScheduler(clock, time.Millisecond, func(time.Duration) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cs.Run(ctx) }()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected at least one tick")
	}
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Run to return after cancel")
	}
}

func TestManualTimeProviderAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualTimeProvider(start)
	if !clock.Now().Equal(start) {
		t.Errorf("Expected %v, got %v", start, clock.Now())
	}
	clock.Advance(time.Hour)
	if want := start.Add(time.Hour); !clock.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, clock.Now())
	}
}
