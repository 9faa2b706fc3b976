// Package signal provides a small ordered observer list used to fan out
// change notifications between menu entities.
package signal

// Subscription identifies a handler registered with a Signal.
type Subscription uint64

// Signal is an ordered list of handlers notified on Emit.
type Signal[T any] struct {
	next     Subscription
	handlers []handler[T]
}

type handler[T any] struct {
	id Subscription
	fn func(T)
}

// Subscribe registers fn and returns a handle for Unsubscribe.
func (s *Signal[T]) Subscribe(fn func(T)) Subscription {
	s.next++
	s.handlers = append(s.handlers, handler[T]{id: s.next, fn: fn})
	return s.next
}

// Unsubscribe removes the handler registered under id. Unknown ids are ignored.
func (s *Signal[T]) Unsubscribe(id Subscription) {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return
		}
	}
}

// Emit invokes every handler in registration order. Handlers added or removed
// while emitting take effect on the next Emit.
func (s *Signal[T]) Emit(value T) {
	if len(s.handlers) == 0 {
		return
	}
	snapshot := append([]handler[T](nil), s.handlers...)
	for _, h := range snapshot {
		h.fn(value)
	}
}

// Len reports the number of registered handlers.
func (s *Signal[T]) Len() int {
	return len(s.handlers)
}
