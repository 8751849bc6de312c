package loom

import (
	"fmt"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"

	"github.com/weftworks/loom/observe"
)

// Runtime owns the shared state of one reactive graph: the dependency
// tracking stack, the batch controller and the wrapper registry. Create
// one per logical thread of execution.
type Runtime struct {
	frames     []tracker
	batchDepth int
	pending    mapset.Set[*WritableSignal]

	reg         *observe.Registry
	activeGroup *EffectGroup

	logger  zerolog.Logger
	onError OnErrorFunc
}

type Option func(*Runtime)

// WithErrorHandler replaces the default logging error handler.
func WithErrorHandler(fn OnErrorFunc) Option {
	return func(rt *Runtime) { rt.onError = fn }
}

// WithLogger replaces the logger used by the default error handler.
func WithLogger(l zerolog.Logger) Option {
	return func(rt *Runtime) { rt.logger = l }
}

func New(opts ...Option) *Runtime {
	rt := &Runtime{
		pending: mapset.NewThreadUnsafeSet[*WritableSignal](),
		reg:     observe.NewRegistry(),
		logger:  zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.onError == nil {
		rt.onError = func(from any, err error) {
			rt.logger.Error().
				Err(err).
				Str("source", fmt.Sprintf("%T", from)).
				Msg("reactive callback failed")
		}
	}
	return rt
}

// pushFrame and popFrame must stay strictly balanced; every caller pops
// in a defer so an escaping panic cannot corrupt dependency attribution.
func (rt *Runtime) pushFrame(f tracker) {
	rt.frames = append(rt.frames, f)
}

func (rt *Runtime) popFrame() {
	rt.frames = rt.frames[:len(rt.frames)-1]
}

func (rt *Runtime) currentFrame() tracker {
	if n := len(rt.frames); n > 0 {
		return rt.frames[n-1]
	}
	return nil
}

func (rt *Runtime) track(src source) {
	if f := rt.currentFrame(); f != nil {
		f.record(src)
	}
}

// Untracked runs fn with the untracked sentinel on the stack: reads
// inside register no dependency, regardless of any enclosing computation.
// Returns fn's return value.
func (rt *Runtime) Untracked(fn func() any) any {
	rt.pushFrame(nil)
	defer rt.popFrame()
	return fn()
}

// StartBatch suspends notification delivery until the matching EndBatch.
func (rt *Runtime) StartBatch() {
	rt.batchDepth++
}

// EndBatch closes one batch level. When the outermost level closes, every
// signal that changed during the batch delivers exactly once.
func (rt *Runtime) EndBatch() {
	rt.batchDepth--
	if rt.batchDepth == 0 {
		rt.flush()
	}
}

// Batch coalesces all signal notifications raised inside fn into a single
// delivery per affected signal. Nested calls behave as one outer batch.
func (rt *Runtime) Batch(fn func()) {
	rt.StartBatch()
	defer rt.EndBatch()
	fn()
}

func (rt *Runtime) flush() {
	for rt.pending.Cardinality() > 0 {
		queued := rt.pending.ToSlice()
		rt.pending.Clear()
		for _, s := range queued {
			s.deliver()
		}
	}
}

// guard runs fn and converts a panic into a reported error, so one faulty
// observer cannot break the rest of the graph.
func (rt *Runtime) guard(from any, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			rt.onError(from, err)
		}
	}()
	fn()
}
