// event provides small typed publish/subscribe streams. Each event kind
// gets its own [Stream], so dispatch is checked by the compiler instead
// of going through a string-keyed listener registry.
package event

// A Stream is an ordered list of handlers for one event kind. The zero
// value is ready to use. Streams are not synchronized: the renderer and
// everything subscribing to it live on the single event-loop goroutine.
type Stream[T any] struct {
	handlers []func(T)
}

// Registers a handler. Handlers are invoked in subscription order on
// every publish. Nil handlers are ignored.
func (self *Stream[T]) Subscribe(handler func(T)) {
	if handler == nil { return }
	self.handlers = append(self.handlers, handler)
}

// Invokes every subscribed handler with the event value, synchronously,
// in subscription order.
func (self *Stream[T]) Publish(value T) {
	for _, handler := range self.handlers {
		handler(value)
	}
}

// Returns the number of subscribed handlers.
func (self *Stream[T]) NumHandlers() int { return len(self.handlers) }
