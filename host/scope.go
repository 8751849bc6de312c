// Package host adapts the reactive engine to a UI-component style
// lifecycle. It is a consumer of the core's effect and tracking surface,
// not part of the engine: any framework with construct/render/disconnect
// hooks can drive a RenderScope.
package host

import (
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/weftworks/loom"
)

// RenderScope ties one host component to the reactive graph. It owns an
// internal effect whose dependencies are whatever the component's render
// reads; when any of them changes the scope stamps an update time and
// asks the host to re-render. Effects created during construction or
// rendering are collected and disposed together with the scope.
type RenderScope struct {
	rt   *loom.Runtime
	name string
	id   uint64

	group *loom.EffectGroup
	inner *loom.EffectRunner
	stamp *loom.WritableSignal
	seq   int64

	onInvalidate func()
	lastUpdate   time.Time
	ready        bool
	disposed     bool
}

// NewRenderScope creates a scope for the named component. onInvalidate is
// called whenever a tracked dependency changes after construction; the
// host decides when and how to actually re-render.
func NewRenderScope(rt *loom.Runtime, name string, onInvalidate func()) *RenderScope {
	s := &RenderScope{
		rt:           rt,
		name:         name,
		id:           xxhash.Sum64String(name),
		group:        loom.NewGroup(rt),
		onInvalidate: onInvalidate,
	}
	s.stamp = loom.Signal(rt, int64(0))
	s.group.Run(func() {
		s.inner = loom.Effect(rt, func() loom.Cleanup {
			s.lastUpdate = time.Now()
			if s.ready && s.onInvalidate != nil {
				s.onInvalidate()
			}
			return nil
		})
	})
	s.ready = true
	return s
}

func (s *RenderScope) Name() string { return s.name }

// ID is a stable hash of the scope name, for logs and host-side maps.
func (s *RenderScope) ID() uint64 { return s.id }

// LastUpdate reports when a dependency last invalidated this scope.
func (s *RenderScope) LastUpdate() time.Time { return s.lastUpdate }

// Render runs the host's render function under the internal effect's
// frame: the update stamp and every signal read while rendering become
// dependencies, so the next change re-invalidates the scope. Effects
// created inside are collected for bulk disposal.
func (s *RenderScope) Render(render func()) {
	if s.disposed {
		return
	}
	s.group.Run(func() {
		s.inner.Track(func() {
			s.stamp.Value()
			render()
		})
	})
}

// Invalidate forces a re-render by bumping the update stamp the internal
// effect depends on.
func (s *RenderScope) Invalidate() {
	if s.disposed {
		return
	}
	s.seq++
	s.stamp.SetValue(s.seq)
}

// Dispose disconnects the scope: the internal effect and every effect
// created during construction or rendering are disposed. Idempotent.
func (s *RenderScope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.inner.Dispose()
	s.group.Dispose()
}

// Disposed reports whether Dispose has run.
func (s *RenderScope) Disposed() bool { return s.disposed }
