package session

import "context"

// Subscribe registers a subscriber for the events of a session. Events are
// delivered as values of type Event. capacity is the buffer size of the
// returned channel. Events are delivered in order; an event is dropped for a
// subscriber whose buffer is full, editing never waits for subscribers.
//
// The subscription ends when ctx is done, when Unsubscribe is called, or when
// the session is closed. ok is false if the session has already been closed.
func (s *Session) Subscribe(ctx context.Context, capacity uint) (events chan interface{}, ok bool) {
	return s.cast.Sub(ctx, capacity)
}

// Unsubscribe ends a subscription started with Subscribe.
func (s *Session) Unsubscribe(events chan interface{}) bool {
	return s.cast.Unsub(events)
}

// Close ends all subscriptions. The session remains usable for editing.
func (s *Session) Close() {
	s.cast.Close()
}

func (s *Session) publish(kind EventKind) {
	ev := Event{
		Kind:      kind,
		StartUnit: s.start,
		EndUnit:   s.end,
		Points:    s.points,
		Length:    len(s.text),
	}
	if !s.cast.TryPub(ev) {
		tracer().Debugf("session: %s event dropped", kind)
	}
}
