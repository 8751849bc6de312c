package loom

// EffectRunner owns a side-effecting callback, its latest cleanup and the
// dependency subscriptions discovered by running it.
//
// The dependency set reflects every source read during any run so far: an
// edge is added the first time a source is read and dropped only at
// disposal. A source that stops being read keeps its subscription (and
// may cause a spare re-run) until Dispose.
type EffectRunner struct {
	rt       *Runtime
	fn       func() Cleanup
	cleanup  Cleanup
	deps     map[source]func()
	disposed bool
}

// Effect runs fn synchronously once, capturing every signal and computed
// it reads as a dependency, and re-runs it whenever one of them commits a
// change. fn may return a Cleanup invoked before each re-run and on
// disposal. An active EffectGroup collects the runner for bulk disposal.
func Effect(rt *Runtime, fn func() Cleanup) *EffectRunner {
	e := &EffectRunner{rt: rt, fn: fn, deps: map[source]func(){}}
	if rt.activeGroup != nil {
		rt.activeGroup.add(e)
	}
	e.run()
	return e
}

func (e *EffectRunner) run() {
	e.rt.pushFrame(e)
	defer e.rt.popFrame()
	e.runCleanup()
	e.rt.guard(e, func() {
		cl := e.fn()
		if e.disposed {
			// The callback disposed its own runner; nothing will ever
			// invoke a stored cleanup, so run it now.
			if cl != nil {
				cl()
			}
			return
		}
		e.cleanup = cl
	})
}

func (e *EffectRunner) runCleanup() {
	if e.cleanup == nil {
		return
	}
	cl := e.cleanup
	e.cleanup = nil
	e.rt.guard(e, func() { cl() })
}

// record implements tracker.
func (e *EffectRunner) record(src source) {
	if _, ok := e.deps[src]; ok {
		return
	}
	e.deps[src] = src.Subscribe(e.invalidated)
}

func (e *EffectRunner) invalidated() {
	if e.disposed {
		return
	}
	e.run()
}

// Track runs fn with this effect's frame on the dependency stack: every
// read inside becomes a dependency of the effect without re-running its
// callback. This is the stack operation host adapters build renders on.
func (e *EffectRunner) Track(fn func()) {
	if e.disposed {
		fn()
		return
	}
	e.rt.pushFrame(e)
	defer e.rt.popFrame()
	fn()
}

// Dispose runs the last cleanup, removes every dependency subscription
// and stops all future re-runs. Idempotent.
func (e *EffectRunner) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.runCleanup()
	for _, unsub := range e.deps {
		unsub()
	}
	clear(e.deps)
}

// Disposed reports whether Dispose has run.
func (e *EffectRunner) Disposed() bool { return e.disposed }

func (e *EffectRunner) depCount() int { return len(e.deps) }
