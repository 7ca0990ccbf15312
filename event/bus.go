package event

// record is a published event with its bus-wide sequence number
type record struct {
	seq uint64
	ev  GameEvent
}

// Bus is an append-only event log shared by all systems
//
// Lifetime:
//   - Publish appends with a monotonically increasing sequence number
//   - Update (once per tick, before systems run) drops events older than the previous tick
//   - An event is therefore visible during the tick it was published in and the following one
//
// Readers hold independent cursors, so any number of consumers observe the same events
// exactly once each. Not safe for concurrent use; owned by the tick goroutine.
type Bus struct {
	records []record
	nextSeq uint64

	tickStart uint64 // First sequence number of the current tick
	prevStart uint64 // First sequence number of the previous tick
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		records: make([]record, 0, 64),
	}
}

// Publish appends an event
func (b *Bus) Publish(ev GameEvent) {
	b.records = append(b.records, record{seq: b.nextSeq, ev: ev})
	b.nextSeq++
}

// Emit is a shorthand for Publish with type, payload and frame
func (b *Bus) Emit(eventType EventType, payload any, frame int64) {
	b.Publish(GameEvent{Type: eventType, Payload: payload, Frame: frame})
}

// Update advances the retention window by one tick
func (b *Bus) Update() {
	cutoff := b.tickStart
	b.prevStart = b.tickStart
	b.tickStart = b.nextSeq

	drop := 0
	for drop < len(b.records) && b.records[drop].seq < cutoff {
		drop++
	}
	if drop == 0 {
		return
	}

	// Compact in place, the backing array is reused across ticks
	n := copy(b.records, b.records[drop:])
	for i := n; i < len(b.records); i++ {
		b.records[i] = record{}
	}
	b.records = b.records[:n]
}

// Len returns the number of retained events
func (b *Bus) Len() int {
	return len(b.records)
}

// NewReader creates a reader positioned at the current end of the log
// Events published before the reader existed are not delivered
func (b *Bus) NewReader() *Reader {
	return &Reader{bus: b, cursor: b.nextSeq}
}

// NewReaderFromStart creates a reader that also sees every retained event
func (b *Bus) NewReaderFromStart() *Reader {
	r := &Reader{bus: b, cursor: b.nextSeq}
	if len(b.records) > 0 {
		r.cursor = b.records[0].seq
	}
	return r
}

// Reader is a single-consumer cursor over a Bus
type Reader struct {
	bus    *Bus
	cursor uint64
	missed uint64
}

// Read returns all events published since the previous Read, in publish order
// The returned slice is owned by the caller
func (r *Reader) Read() []GameEvent {
	records := r.bus.records
	if len(records) == 0 {
		r.skipTo(r.bus.nextSeq)
		return nil
	}

	oldest := records[0].seq
	if r.cursor < oldest {
		r.missed += oldest - r.cursor
		r.cursor = oldest
	}

	start := int(r.cursor - oldest)
	if start >= len(records) {
		r.cursor = r.bus.nextSeq
		return nil
	}

	out := make([]GameEvent, 0, len(records)-start)
	for _, rec := range records[start:] {
		out = append(out, rec.ev)
	}
	r.cursor = r.bus.nextSeq
	return out
}

// skipTo advances past events that were dropped while the log was empty
func (r *Reader) skipTo(seq uint64) {
	if r.cursor < seq {
		r.missed += seq - r.cursor
		r.cursor = seq
	}
}

// Missed returns how many events expired before this reader observed them
func (r *Reader) Missed() uint64 {
	return r.missed
}

// Len returns the number of events pending for this reader
func (r *Reader) Len() int {
	records := r.bus.records
	if len(records) == 0 {
		return 0
	}
	oldest := records[0].seq
	cursor := r.cursor
	if cursor < oldest {
		cursor = oldest
	}
	return int(r.bus.nextSeq - cursor)
}
