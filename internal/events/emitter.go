package events

import (
	"context"
	"log/slog"
	"sync"
)

// InMemoryEmitter dispatches events synchronously to handlers registered in
// process memory, optionally filtered by event type.
type InMemoryEmitter struct {
	mu       sync.RWMutex
	handlers []registration
	logger   *slog.Logger
}

type registration struct {
	types   map[string]bool
	handler Handler
}

func (r registration) wants(eventType string) bool {
	return len(r.types) == 0 || r.types[eventType]
}

// NewInMemoryEmitter creates an emitter with no handlers.
func NewInMemoryEmitter(logger *slog.Logger) *InMemoryEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEmitter{
		logger: logger.With("component", "event_emitter"),
	}
}

// Register adds a handler. With no types it receives every event; otherwise
// only events of the listed types.
func (e *InMemoryEmitter) Register(handler Handler, types ...string) {
	reg := registration{handler: handler}
	if len(types) > 0 {
		reg.types = make(map[string]bool, len(types))
		for _, t := range types {
			reg.types[t] = true
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, reg)
	e.logger.Debug("registered event handler", "handler_count", len(e.handlers), "types", types)
}

// Emit publishes event to every interested handler. A failing handler does
// not stop delivery to the others; the first error is returned.
func (e *InMemoryEmitter) Emit(ctx context.Context, event *Event) error {
	e.mu.RLock()
	handlers := make([]registration, 0, len(e.handlers))
	for _, reg := range e.handlers {
		if reg.wants(event.Type) {
			handlers = append(handlers, reg)
		}
	}
	e.mu.RUnlock()

	e.logger.Debug("emitting event",
		"event_id", event.ID,
		"event_type", event.Type,
		"year", event.Year,
		"handler_count", len(handlers))

	var firstErr error
	for i, reg := range handlers {
		if err := reg.handler.HandleEvent(ctx, event); err != nil {
			e.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Recorder is a Handler that keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []*Event
}

// HandleEvent implements Handler.
func (r *Recorder) HandleEvent(_ context.Context, event *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of the received events in order.
func (r *Recorder) Events() []*Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the types of the received events in order.
func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}
