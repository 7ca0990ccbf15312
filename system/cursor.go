package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
)

// eventCursor wraps a bus reader and reports expired events to telemetry
type eventCursor struct {
	reader     *event.Reader
	seen       uint64
	statMissed *atomic.Int64
}

func newEventCursor(world *engine.World) *eventCursor {
	return &eventCursor{
		reader:     world.Resources.Event.Bus.NewReader(),
		statMissed: world.Resources.Status.Ints.Get("events.missed"),
	}
}

func (c *eventCursor) read() []event.GameEvent {
	events := c.reader.Read()
	if missed := c.reader.Missed(); missed > c.seen {
		c.statMissed.Add(int64(missed - c.seen))
		c.seen = missed
	}
	return events
}
