package observe

import "time"

// Timestamp intercepts a temporal value. time.Time itself is immutable,
// so the wrapper owns the instant and exposes explicit mutators; the Set*
// family notifies, the accessors never do.
type Timestamp struct {
	mutated OnMutate
	t       time.Time
}

func newTimestamp(t time.Time, mutated OnMutate) *Timestamp {
	return &Timestamp{mutated: mutated, t: t}
}

func (ts *Timestamp) Time() time.Time { return ts.t }

func (ts *Timestamp) Unix() int64 { return ts.t.Unix() }

func (ts *Timestamp) UnixNano() int64 { return ts.t.UnixNano() }

func (ts *Timestamp) Format(layout string) string { return ts.t.Format(layout) }

// Set replaces the instant. Setting an equal instant is a no-op.
func (ts *Timestamp) Set(t time.Time) {
	if t.Equal(ts.t) {
		return
	}
	ts.t = t
	ts.mutated()
}

func (ts *Timestamp) SetUnix(sec int64) {
	ts.Set(time.Unix(sec, 0))
}

func (ts *Timestamp) SetUnixNano(nsec int64) {
	ts.Set(time.Unix(0, nsec))
}
