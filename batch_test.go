package loom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weftworks/loom"
)

// should coalesce multiple writes to one signal into a single notification
func TestBatchCoalescesWrites(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 0)

	runs := 0
	loom.Effect(rt, func() loom.Cleanup {
		runs++
		s.Value()
		return nil
	})
	assert.Equal(t, 1, runs)

	rt.Batch(func() {
		s.SetValue(1)
		s.SetValue(2)
		s.SetValue(3)
	})
	assert.Equal(t, 2, runs)
	assert.Equal(t, 3, s.Value())
}

// should deliver one notification per distinct signal written
func TestBatchMultipleSignals(t *testing.T) {
	rt := newTestRuntime(t)
	first := loom.Signal(rt, "a")
	last := loom.Signal(rt, "b")

	var seen []string
	loom.Effect(rt, func() loom.Cleanup {
		seen = append(seen, first.Value().(string)+" "+last.Value().(string))
		return nil
	})

	rt.Batch(func() {
		first.SetValue("c")
		last.SetValue("d")
	})

	// One intermediate state is still observed: the effect re-runs once
	// per pending signal, but never mid-batch.
	assert.Equal(t, "a b", seen[0])
	assert.Equal(t, "c d", seen[len(seen)-1])
}

// should defer delivery inside nested batches until the outermost ends
func TestBatchNested(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 0)

	runs := 0
	loom.Effect(rt, func() loom.Cleanup {
		runs++
		s.Value()
		return nil
	})

	rt.Batch(func() {
		s.SetValue(1)
		rt.Batch(func() {
			s.SetValue(2)
		})
		// Inner batch ended, outer is still open.
		assert.Equal(t, 1, runs)
	})
	assert.Equal(t, 2, runs)
}

// should expose the final value to subscribers notified at batch end
func TestBatchObservesFinalValue(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 0)

	var observed int
	loom.Effect(rt, func() loom.Cleanup {
		observed = s.Value().(int)
		return nil
	})

	rt.Batch(func() {
		s.SetValue(1)
		s.SetValue(7)
	})
	assert.Equal(t, 7, observed)
}

// should propagate through computeds exactly once per batch
func TestBatchThroughComputed(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 1)
	c := loom.Computed(rt, func() any { return s.Value().(int) * 10 })

	runs := 0
	var last int
	loom.Effect(rt, func() loom.Cleanup {
		runs++
		last = c.Value().(int)
		return nil
	})
	assert.Equal(t, 1, runs)

	rt.Batch(func() {
		s.SetValue(2)
		s.SetValue(3)
	})
	assert.Equal(t, 2, runs)
	assert.Equal(t, 30, last)
}

// should pair StartBatch and EndBatch like Batch does
func TestStartEndBatch(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 0)

	runs := 0
	loom.Effect(rt, func() loom.Cleanup {
		runs++
		s.Value()
		return nil
	})

	rt.StartBatch()
	s.SetValue(1)
	s.SetValue(2)
	assert.Equal(t, 1, runs)
	rt.EndBatch()
	assert.Equal(t, 2, runs)
}

// should skip notification entirely when the batch nets out to no change
func TestBatchIdenticalWriteSkipped(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 5)

	runs := 0
	loom.Effect(rt, func() loom.Cleanup {
		runs++
		s.Value()
		return nil
	})

	rt.Batch(func() {
		s.SetValue(5)
	})
	assert.Equal(t, 1, runs)
}
