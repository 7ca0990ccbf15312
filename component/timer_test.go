package component

import (
	"testing"
	"time"
)

func TestTimerRepeatingFiresOncePerPeriod(t *testing.T) {
	timer := NewTimer(350*time.Millisecond, true)

	timer.Tick(200 * time.Millisecond)
	if timer.Finished() {
		t.Fatal("Timer fired before its duration elapsed")
	}

	timer.Tick(200 * time.Millisecond)
	if !timer.Finished() {
		t.Fatal("Expected timer to fire after 400ms")
	}
	if timer.Elapsed != 50*time.Millisecond {
		t.Errorf("Expected 50ms carry-over, got %v", timer.Elapsed)
	}

	timer.Tick(16 * time.Millisecond)
	if timer.Finished() {
		t.Error("Finished must only report the firing tick")
	}
}

func TestTimerRepeatingLargeDelta(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, true)
	timer.Tick(350 * time.Millisecond)
	if !timer.Finished() {
		t.Fatal("Expected timer to fire")
	}
	if timer.Elapsed != 50*time.Millisecond {
		t.Errorf("Expected remainder 50ms, got %v", timer.Elapsed)
	}
}

func TestTimerOneShotStaysExpired(t *testing.T) {
	timer := NewTimer(5000*time.Millisecond, false)

	for i := 0; i < 5; i++ {
		timer.Tick(1000 * time.Millisecond)
	}
	if !timer.Finished() || !timer.Expired() {
		t.Fatal("Expected one-shot timer to fire at exactly its duration")
	}
	if timer.Remaining() != 0 {
		t.Errorf("Expected no remaining time, got %v", timer.Remaining())
	}

	timer.Tick(1 * time.Millisecond)
	if timer.Finished() {
		t.Error("One-shot timer must fire only once")
	}
	if !timer.Expired() {
		t.Error("One-shot timer must stay expired")
	}

	timer.Reset()
	if timer.Expired() || timer.Remaining() != 5000*time.Millisecond {
		t.Errorf("Reset should rearm the timer, remaining %v", timer.Remaining())
	}
}
