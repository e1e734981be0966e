// Package events provides a typed, synchronous publish/subscribe bus. It is
// a standalone collaborator of the entity manager; the manager does not
// depend on it.
package events

import "reflect"

// Bus dispatches published events to handlers subscribed for the event's
// type. Dispatch is synchronous and in registration order; there are no
// ordering or concurrency guarantees beyond that. A Bus is not safe for
// concurrent use.
type Bus struct {
	handlers map[reflect.Type][]any
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: map[reflect.Type][]any{},
	}
}

// Subscribe registers handler for events of type E. Handlers for the same
// type run in the order they were subscribed.
func Subscribe[E any](b *Bus, handler func(E)) {
	t := reflect.TypeFor[E]()
	b.handlers[t] = append(b.handlers[t], handler)
}

// Publish invokes every handler subscribed for E, synchronously, on the
// calling goroutine.
func Publish[E any](b *Bus, event E) {
	t := reflect.TypeFor[E]()
	for _, h := range b.handlers[t] {
		h.(func(E))(event)
	}
}

// HandlerCount returns the number of handlers subscribed for E.
func HandlerCount[E any](b *Bus) int {
	return len(b.handlers[reflect.TypeFor[E]()])
}
