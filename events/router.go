package events

// Handler processes specific event types. Picker components and processors
// implement this interface to receive routed events during drain.
type Handler interface {
	// HandleEvent processes a single event, synchronously, during the
	// scheduler's drain of a tick.
	HandleEvent(ev Event)

	// Types returns the event types this handler processes; the router
	// uses it only at registration time.
	Types() []Type
}

// Router dispatches drained events to registered handlers in registration
// order. Single-threaded: Register and Dispatch must not run concurrently,
// which holds naturally since wiring happens before the scheduler starts.
type Router struct {
	handlers map[Type][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to queue.
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[Type][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for every type it declares.
func (r *Router) Register(h Handler) {
	for _, t := range h.Types() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll drains the queue and routes every event to its handlers, in
// FIFO order of events and registration order of handlers.
func (r *Router) DispatchAll() {
	r.queue.Drain(func(ev Event) {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	})
}

// HasHandlers reports whether any handler is registered for t.
func (r *Router) HasHandlers(t Type) bool {
	return len(r.handlers[t]) > 0
}
