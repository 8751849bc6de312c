package observe

import "bytes"

// Buffer intercepts a fixed-width byte view. The view never grows; the
// only mutator is the bulk Set, and indexed reads never notify.
type Buffer struct {
	mutated OnMutate
	b       []byte
}

func newBuffer(b []byte, mutated OnMutate) *Buffer {
	return &Buffer{mutated: mutated, b: b}
}

func (b *Buffer) Len() int { return len(b.b) }

func (b *Buffer) At(i int) byte {
	if i < 0 || i >= len(b.b) {
		return 0
	}
	return b.b[i]
}

// Bytes returns a copy of the underlying storage.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.b))
	copy(out, b.b)
	return out
}

// Set copies data into the view starting at offset, truncating whatever
// does not fit. Writing bytes identical to the ones already in place is a
// no-op.
func (b *Buffer) Set(offset int, data []byte) {
	if offset < 0 || offset >= len(b.b) || len(data) == 0 {
		return
	}
	n := len(data)
	if n > len(b.b)-offset {
		n = len(b.b) - offset
	}
	if bytes.Equal(b.b[offset:offset+n], data[:n]) {
		return
	}
	copy(b.b[offset:], data[:n])
	b.mutated()
}
