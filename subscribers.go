package loom

type subscription struct {
	fn     func()
	active bool
}

// subscriberList keeps callbacks in subscription order. Every add returns
// its own idempotent unsubscribe; cancelling one subscription never
// affects another, even for the same callback.
type subscriberList struct {
	subs []*subscription
}

func (l *subscriberList) add(fn func()) func() {
	sub := &subscription{fn: fn, active: true}
	l.subs = append(l.subs, sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, s := range l.subs {
			if s == sub {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

func (l *subscriberList) len() int { return len(l.subs) }

// notify invokes every current subscriber in order, isolating each
// callback's failure from the rest. Subscribers added during delivery are
// not called until the next notification.
func (l *subscriberList) notify(rt *Runtime, from any) {
	current := make([]*subscription, len(l.subs))
	copy(current, l.subs)
	for _, sub := range current {
		if !sub.active {
			continue
		}
		rt.guard(from, sub.fn)
	}
}
