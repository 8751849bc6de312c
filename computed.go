package loom

import "github.com/weftworks/loom/observe"

// ReadonlySignal is a derived reactive value: computed lazily, cached
// while clean, and itself a dependency source for further readers.
//
// A dependency change marks it dirty and notifies its subscribers without
// recomputing; the next Value or Peek pays for the recomputation. Being
// dirtied again before anyone reads coalesces into the earlier
// notification.
type ReadonlySignal struct {
	rt *Runtime
	fn func() any

	value     any
	dirty     bool
	computing bool

	deps map[source]func()
	subs subscriberList
}

// Computed creates a derived value. The computation runs once eagerly, so
// the signal is born clean with its dependencies established.
func Computed(rt *Runtime, fn func() any) *ReadonlySignal {
	c := &ReadonlySignal{rt: rt, fn: fn, deps: map[source]func(){}}
	c.recompute()
	return c
}

// Value returns the memoized result, recomputing first if a dependency
// committed a change, and records this computed against the active
// computation exactly as a signal read does.
func (c *ReadonlySignal) Value() any {
	c.refresh()
	c.rt.track(c)
	return c.value
}

// Peek returns the memoized result (recomputing if dirty) without
// recording a dependency.
func (c *ReadonlySignal) Peek() any {
	c.refresh()
	return c.value
}

func (c *ReadonlySignal) Subscribe(fn func()) func() {
	return c.subs.add(fn)
}

func (c *ReadonlySignal) refresh() {
	// A read issued by our own computation sees the stale memo instead of
	// recursing.
	if c.dirty && !c.computing {
		c.recompute()
	}
}

func (c *ReadonlySignal) recompute() {
	c.computing = true
	c.rt.pushFrame(c)
	defer func() {
		c.rt.popFrame()
		c.computing = false
	}()
	next := c.fn()
	c.dirty = false
	if !observe.Identical(c.value, next) {
		c.value = next
	}
}

// record implements tracker: dependencies discovered during recomputation
// are subscribed once and kept until the computed itself is collected.
func (c *ReadonlySignal) record(src source) {
	if other, ok := src.(*ReadonlySignal); ok && other == c {
		return
	}
	if _, ok := c.deps[src]; ok {
		return
	}
	c.deps[src] = src.Subscribe(c.invalidated)
}

func (c *ReadonlySignal) invalidated() {
	if c.computing {
		// Re-entrant dirtying from our own computation: ignore rather
		// than recurse, last write wins.
		return
	}
	if c.dirty {
		return
	}
	c.dirty = true
	c.subs.notify(c.rt, c)
}
