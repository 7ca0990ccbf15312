package component

import "time"

// Timer is a duration countdown advanced by each tick's elapsed time
// Finished reports true only on the tick the accumulated time crosses Duration
// Repeating timers keep the overshoot and rearm, one-shot timers stay expired
type Timer struct {
	Duration  time.Duration
	Elapsed   time.Duration
	Repeating bool

	finished bool
	expired  bool
}

// NewTimer creates an armed timer
func NewTimer(d time.Duration, repeating bool) Timer {
	return Timer{Duration: d, Repeating: repeating}
}

// Tick advances the timer by dt
func (t *Timer) Tick(dt time.Duration) {
	t.finished = false
	if t.expired {
		return
	}

	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return
	}

	t.finished = true
	if t.Repeating && t.Duration > 0 {
		t.Elapsed %= t.Duration
	} else {
		t.Elapsed = t.Duration
		t.expired = true
	}
}

// Finished reports whether the timer fired during the most recent Tick
func (t *Timer) Finished() bool {
	return t.finished
}

// Expired reports whether a one-shot timer has run out
func (t *Timer) Expired() bool {
	return t.expired
}

// Remaining returns the time left until the next firing
func (t *Timer) Remaining() time.Duration {
	if t.expired {
		return 0
	}
	return t.Duration - t.Elapsed
}

// Reset rearms the timer with the same duration
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.expired = false
}
