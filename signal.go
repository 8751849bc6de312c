package loom

import "github.com/weftworks/loom/observe"

// WritableSignal is the primitive reactive container. The stored value is
// either a primitive or an observe wrapper; mutable containers never sit
// inside a signal raw, so in-place mutation notifies the same way a
// replacement write does.
type WritableSignal struct {
	rt    *Runtime
	value any
	subs  subscriberList
}

// Signal creates a reactive container holding initial. nil is a fully
// supported value, not an absence marker.
func Signal(rt *Runtime, initial any) *WritableSignal {
	s := &WritableSignal{rt: rt}
	s.value = rt.reg.Wrap(initial, s.changed)
	return s
}

// Value returns the current value and records this signal as a dependency
// of whatever computation is on top of the tracking stack.
func (s *WritableSignal) Value() any {
	s.rt.track(s)
	return s.value
}

// Peek returns the current value without recording a dependency.
func (s *WritableSignal) Peek() any {
	return s.value
}

// SetValue replaces the value. Writing a strictly identical value is a
// guaranteed no-op; otherwise the new value is wrapped against this
// signal's notifier, stored, and subscribers are notified (or deferred
// into the current batch). Identity is judged after wrapping, so writing
// the raw container a stored wrapper was built from is a no-op too.
func (s *WritableSignal) SetValue(v any) {
	next := s.rt.reg.Wrap(v, s.changed)
	if observe.Identical(s.value, next) {
		return
	}
	s.value = next
	s.changed()
}

// Subscribe registers fn to run after every committed change. The
// returned unsubscribe is idempotent, and multiple subscriptions are each
// independently cancellable.
func (s *WritableSignal) Subscribe(fn func()) func() {
	return s.subs.add(fn)
}

// changed is the notification entry point for both replacement writes and
// in-place mutation of the wrapped value.
func (s *WritableSignal) changed() {
	if s.rt.batchDepth > 0 {
		s.rt.pending.Add(s)
		return
	}
	s.deliver()
}

func (s *WritableSignal) deliver() {
	s.subs.notify(s.rt, s)
}
