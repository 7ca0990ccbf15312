package event

// Handler processes specific event types
// Sinks outside the simulation (audio, logging, spectators) implement this to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, after all systems ran
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// Router dispatches bus events to registered handlers
//
// Architecture:
//   - Owns its own Reader, so routing never steals events from systems
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[EventType][]Handler
	reader   *Reader
}

// NewRouter creates a router reading from the given bus
func NewRouter(bus *Bus) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		reader:   bus.NewReader(),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll reads all pending events and routes them to handlers in FIFO order
// Returns the number of events read
func (r *Router) DispatchAll() int {
	events := r.reader.Read()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}

// HandlerFunc adapts a function to the Handler interface for a fixed set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(ev GameEvent)
}

// HandleEvent calls Fn
func (h HandlerFunc) HandleEvent(ev GameEvent) {
	h.Fn(ev)
}

// EventTypes returns Types
func (h HandlerFunc) EventTypes() []EventType {
	return h.Types
}
