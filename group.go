package loom

// EffectGroup collects effects for bulk disposal. Host integrations mark
// a group active around component construction and rendering so that
// every effect created inside belongs to the component's lifetime.
type EffectGroup struct {
	rt       *Runtime
	effects  []*EffectRunner
	disposed bool
}

func NewGroup(rt *Runtime) *EffectGroup {
	return &EffectGroup{rt: rt}
}

func (g *EffectGroup) add(e *EffectRunner) {
	g.effects = append(g.effects, e)
}

// Run marks g as the active collector for the duration of fn. Groups
// nest: the previous collector is restored on every exit path.
func (g *EffectGroup) Run(fn func()) {
	prev := g.rt.activeGroup
	g.rt.activeGroup = g
	defer func() { g.rt.activeGroup = prev }()
	fn()
}

// Dispose disposes every collected effect. Idempotent.
func (g *EffectGroup) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	for _, e := range g.effects {
		e.Dispose()
	}
	g.effects = nil
}

// Len reports how many effects the group currently holds.
func (g *EffectGroup) Len() int { return len(g.effects) }
