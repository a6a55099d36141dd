package linkq

import "slices"

// Subscription identifies a handler registered with an [Event].
type Subscription uint64

// An Event is a list of handlers that are called, in the order that
// they were subscribed, every time the event fires. A zero value
// Event is ready to use.
//
// Handlers run synchronously on the goroutine that caused the event.
// The handler list is copied before each firing, so subscribing or
// unsubscribing from inside a handler only affects later firings.
type Event struct {
	handlers []handler
	next     Subscription
}

type handler struct {
	id Subscription
	f  func()
}

// Subscribe registers f to be called when the event fires. The same
// function may be subscribed more than once, in which case it is
// called once per subscription.
func (e *Event) Subscribe(f func()) Subscription {
	e.next++
	e.handlers = append(e.handlers, handler{id: e.next, f: f})
	return e.next
}

// Unsubscribe removes the handler registered under s. It returns
// false if there was no such handler.
func (e *Event) Unsubscribe(s Subscription) bool {
	i := slices.IndexFunc(e.handlers, func(h handler) bool { return h.id == s })
	if i < 0 {
		return false
	}

	e.handlers = slices.Delete(e.handlers, i, i+1)
	return true
}

// Len returns the number of subscribed handlers.
func (e *Event) Len() int {
	return len(e.handlers)
}

func (e *Event) fire() {
	if len(e.handlers) == 0 {
		return
	}

	for _, h := range slices.Clone(e.handlers) {
		h.f()
	}
}
