// Package events provides a typed, synchronous publish/subscribe register.
//
// An [Event] binds an event name to a payload type at compile time, so a
// handler for "render:complete" can only ever receive the payload type that
// was declared for it. Delivery is synchronous and in-process.
//
// A [Channel] is not safe for concurrent use.
package events

// Event is a typed event name.
type Event[T any] struct {
	name string
}

// NewEvent declares an event name carrying payloads of type T.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{name: name}
}

// Name returns the event name.
func (e Event[T]) Name() string { return e.name }

// Channel maps event names to sets of handlers.
type Channel struct {
	handlers map[string]map[uint64]any
	nextID   uint64
}

// New returns an empty channel.
func New() *Channel {
	return &Channel{handlers: make(map[string]map[uint64]any)}
}

// Subscribe registers handler for ev. The returned function removes exactly
// that registration; calling it more than once is a no-op.
func Subscribe[T any](c *Channel, ev Event[T], handler func(T)) func() {
	if c.handlers == nil {
		c.handlers = make(map[string]map[uint64]any)
	}
	c.nextID++
	id := c.nextID

	set, ok := c.handlers[ev.name]
	if !ok {
		set = make(map[uint64]any)
		c.handlers[ev.name] = set
	}
	set[id] = handler

	return func() { c.remove(ev.name, id) }
}

// Publish calls every handler registered for ev when Publish is entered.
// Order is unspecified. A panicking handler unwinds into the caller.
func Publish[T any](c *Channel, ev Event[T], payload T) {
	set := c.handlers[ev.name]
	if len(set) == 0 {
		return
	}

	snapshot := make([]func(T), 0, len(set))
	for _, h := range set {
		// a name redeclared with another payload type never crosses over
		if fn, ok := h.(func(T)); ok {
			snapshot = append(snapshot, fn)
		}
	}
	for _, h := range snapshot {
		h(payload)
	}
}

// Clear drops every registration for every event name.
func (c *Channel) Clear() {
	clear(c.handlers)
}

// Len reports how many handlers are registered under name.
func (c *Channel) Len(name string) int {
	return len(c.handlers[name])
}

func (c *Channel) remove(name string, id uint64) {
	set, ok := c.handlers[name]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(c.handlers, name)
	}
}
