// Package loom is a fine-grained reactive-state engine: signals hold
// values, computeds derive cached values from them, effects re-run when
// anything they read changes, and nobody wires a listener by hand.
// Dependency edges are discovered by running code: reading a signal while
// a computation is on the tracking stack records the edge for next time.
//
// All state lives on an explicit Runtime rather than in package globals,
// so tests and multi-instance hosts can each own their graph. A Runtime
// assumes a single logical thread; ports to concurrent hosts must
// serialize access externally.
package loom
