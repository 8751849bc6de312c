package loom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weftworks/loom"
)

func newTestRuntime(t *testing.T) *loom.Runtime {
	t.Helper()
	return loom.New(loom.WithErrorHandler(func(from any, err error) {
		assert.FailNow(t, err.Error())
	}))
}

// should hold and replace values
func TestSignalBasics(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 1)

	assert.Equal(t, 1, s.Value())
	s.SetValue(2)
	assert.Equal(t, 2, s.Value())
}

// should support nil as a real value
func TestSignalNilValue(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, nil)

	fired := 0
	s.Subscribe(func() { fired++ })

	assert.Nil(t, s.Value())
	s.SetValue(nil)
	assert.Equal(t, 0, fired)

	s.SetValue(1)
	assert.Equal(t, 1, fired)
	s.SetValue(nil)
	assert.Equal(t, 2, fired)
	assert.Nil(t, s.Peek())
}

// should never notify on a write of an identical value
func TestSignalNoRedundantNotification(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, "same")

	fired := 0
	s.Subscribe(func() { fired++ })

	s.SetValue("same")
	s.SetValue("same")
	assert.Equal(t, 0, fired)

	s.SetValue("different")
	assert.Equal(t, 1, fired)
}

// should notify subscribers in subscription order
func TestSignalSubscriptionOrder(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 0)

	var order []int
	s.Subscribe(func() { order = append(order, 1) })
	s.Subscribe(func() { order = append(order, 2) })
	s.Subscribe(func() { order = append(order, 3) })

	s.SetValue(1)
	assert.Equal(t, []int{1, 2, 3}, order)
}

// should cancel subscriptions independently and idempotently
func TestSignalUnsubscribe(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 0)

	aFired, bFired := 0, 0
	unsubA := s.Subscribe(func() { aFired++ })
	s.Subscribe(func() { bFired++ })

	s.SetValue(1)
	assert.Equal(t, 1, aFired)
	assert.Equal(t, 1, bFired)

	unsubA()
	unsubA() // second call is a no-op
	s.SetValue(2)
	assert.Equal(t, 1, aFired)
	assert.Equal(t, 2, bFired)
}

// should allow the same callback to subscribe more than once
func TestSignalDuplicateCallback(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 0)

	fired := 0
	fn := func() { fired++ }
	s.Subscribe(fn)
	unsub := s.Subscribe(fn)

	s.SetValue(1)
	assert.Equal(t, 2, fired)

	unsub()
	s.SetValue(2)
	assert.Equal(t, 3, fired)
}

// should read without registering a dependency via Peek
func TestSignalPeekDoesNotTrack(t *testing.T) {
	rt := newTestRuntime(t)
	s := loom.Signal(rt, 1)

	runs := 0
	loom.Effect(rt, func() loom.Cleanup {
		runs++
		s.Peek()
		return nil
	})

	assert.Equal(t, 1, runs)
	s.SetValue(2)
	assert.Equal(t, 1, runs)
}
