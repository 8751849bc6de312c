package loom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weftworks/loom"
)

// should behave like the untyped signal underneath
func TestTypedSignals(t *testing.T) {
	rt := newTestRuntime(t)

	i := loom.NewIntSignal(rt, 7)
	assert.Equal(t, 7, i.Value())
	i.SetValue(8)
	assert.Equal(t, 8, i.Peek())

	s := loom.NewStringSignal(rt, "hello")
	s.SetValue("world")
	assert.Equal(t, "world", s.Value())

	f := loom.NewFloat64Signal(rt, 1.5)
	f.SetValue(2.5)
	assert.Equal(t, 2.5, f.Value())

	b := loom.NewBoolSignal(rt, false)
	b.SetValue(true)
	assert.True(t, b.Value())
}

// should track typed reads inside computations
func TestTypedSignalTracked(t *testing.T) {
	rt := newTestRuntime(t)
	n := loom.NewInt64Signal(rt, 2)

	c := loom.Computed(rt, func() any { return n.Value() * 10 })
	assert.Equal(t, int64(20), c.Value())

	n.SetValue(3)
	assert.Equal(t, int64(30), c.Value())
}

// should share state through Raw
func TestTypedSignalRaw(t *testing.T) {
	rt := newTestRuntime(t)
	u := loom.NewUint64Signal(rt, 1)

	fired := 0
	u.Subscribe(func() { fired++ })

	u.Raw().SetValue(uint64(5))
	assert.Equal(t, uint64(5), u.Value())
	assert.Equal(t, 1, fired)
}
