package loom

// Cleanup is returned by an effect callback to undo whatever the run set
// up. It is invoked before the next run and on disposal.
type Cleanup func()

// OnErrorFunc receives failures recovered at the notification boundary.
// from is the signal, computed or effect whose callback failed.
type OnErrorFunc func(from any, err error)

// source is anything a computation can depend on.
type source interface {
	Subscribe(fn func()) func()
}

// tracker is a frame on the dependency stack; reads report to the top
// frame. A nil tracker frame is the untracked sentinel.
type tracker interface {
	record(src source)
}
