package observe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/weftworks/loom/observe"
)

// should own the instant and notify on replacement
func TestTimestampSet(t *testing.T) {
	fired := 0
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ts := observe.NewRegistry().Wrap(base, func() { fired++ }).(*observe.Timestamp)

	assert.True(t, ts.Time().Equal(base))
	assert.Equal(t, 0, fired)

	next := base.Add(time.Hour)
	ts.Set(next)
	assert.Equal(t, 1, fired)
	assert.True(t, ts.Time().Equal(next))

	// Equal instants do not notify, even across locations.
	ts.Set(next.In(time.FixedZone("X", 3600)))
	assert.Equal(t, 1, fired)
}

// should mutate through the unix setters
func TestTimestampUnix(t *testing.T) {
	fired := 0
	ts := observe.NewRegistry().Wrap(time.Unix(0, 0), func() { fired++ }).(*observe.Timestamp)

	ts.SetUnix(1000)
	assert.Equal(t, 1, fired)
	assert.Equal(t, int64(1000), ts.Unix())

	ts.SetUnixNano(1000 * int64(time.Second))
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1000*int64(time.Second), ts.UnixNano())
}

// should format without notifying
func TestTimestampFormat(t *testing.T) {
	fired := 0
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ts := observe.NewRegistry().Wrap(base, func() { fired++ }).(*observe.Timestamp)

	assert.Equal(t, "2024-03-01", ts.Format("2006-01-02"))
	assert.Equal(t, 0, fired)
}

// should wrap a *time.Time the same way as a value
func TestTimestampFromPointer(t *testing.T) {
	base := time.Unix(42, 0)
	w := observe.NewRegistry().Wrap(&base, func() {})
	ts, ok := w.(*observe.Timestamp)
	if assert.True(t, ok) {
		assert.Equal(t, int64(42), ts.Unix())
	}
}
