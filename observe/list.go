package observe

import (
	"fmt"
	"sort"
	"strings"
)

// List intercepts a sequential collection. The wrapper owns the element
// storage; once a slice is wrapped, the List is its canonical form.
//
// Mutating operations: Set, Push, Pop, Shift, Unshift, Splice, Sort,
// Reverse. Everything else reads without notifying.
type List struct {
	reg     *Registry
	mutated OnMutate
	items   []any
}

func newList(reg *Registry, items []any, mutated OnMutate) *List {
	return &List{reg: reg, mutated: mutated, items: items}
}

func (l *List) Len() int { return len(l.items) }

// At returns the element at i. Containers found in place are wrapped with
// the list's own mutation callback and written back, so nested mutation
// stays observable without the caller re-wrapping anything.
func (l *List) At(i int) any {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	v := l.items[i]
	w := l.reg.Wrap(v, l.mutated)
	if isWrapper(w) && !isWrapper(v) {
		l.items[i] = w
	}
	return w
}

// Set replaces the element at i. Writing a strictly identical value is a
// no-op and raises no notification.
func (l *List) Set(i int, v any) {
	if i < 0 || i >= len(l.items) {
		return
	}
	if Identical(l.items[i], v) {
		return
	}
	l.items[i] = l.reg.Wrap(v, l.mutated)
	l.mutated()
}

func (l *List) Push(vs ...any) {
	if len(vs) == 0 {
		return
	}
	for _, v := range vs {
		l.items = append(l.items, l.reg.Wrap(v, l.mutated))
	}
	l.mutated()
}

func (l *List) Pop() any {
	if len(l.items) == 0 {
		return nil
	}
	last := l.items[len(l.items)-1]
	l.items = l.items[:len(l.items)-1]
	l.mutated()
	return last
}

func (l *List) Shift() any {
	if len(l.items) == 0 {
		return nil
	}
	first := l.items[0]
	l.items = append(l.items[:0], l.items[1:]...)
	l.mutated()
	return first
}

func (l *List) Unshift(vs ...any) {
	if len(vs) == 0 {
		return
	}
	wrapped := make([]any, 0, len(vs)+len(l.items))
	for _, v := range vs {
		wrapped = append(wrapped, l.reg.Wrap(v, l.mutated))
	}
	l.items = append(wrapped, l.items...)
	l.mutated()
}

// Splice removes deleteCount elements starting at start, inserts items in
// their place and returns the removed elements. Indices are clamped the
// way dynamic runtimes clamp them.
func (l *List) Splice(start, deleteCount int, items ...any) []any {
	n := len(l.items)
	if start < 0 {
		start = n + start
	}
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if deleteCount > n-start {
		deleteCount = n - start
	}

	removed := make([]any, deleteCount)
	copy(removed, l.items[start:start+deleteCount])

	if deleteCount == 0 && len(items) == 0 {
		return removed
	}

	rest := make([]any, 0, n-deleteCount+len(items))
	rest = append(rest, l.items[:start]...)
	for _, v := range items {
		rest = append(rest, l.reg.Wrap(v, l.mutated))
	}
	rest = append(rest, l.items[start+deleteCount:]...)
	l.items = rest
	l.mutated()
	return removed
}

// Sort orders the list in place. In-place ordering always counts as a
// mutation.
func (l *List) Sort(less func(a, b any) bool) {
	sort.SliceStable(l.items, func(i, j int) bool {
		return less(l.items[i], l.items[j])
	})
	l.mutated()
}

func (l *List) Reverse() {
	for i, j := 0, len(l.items)-1; i < j; i, j = i+1, j-1 {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
	l.mutated()
}

// Slice returns a copy of the [start, end) range without notifying.
func (l *List) Slice(start, end int) []any {
	n := len(l.items)
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return nil
	}
	out := make([]any, end-start)
	copy(out, l.items[start:end])
	return out
}

func (l *List) IndexOf(v any) int {
	for i, item := range l.items {
		if Identical(item, v) {
			return i
		}
	}
	return -1
}

func (l *List) Join(sep string) string {
	var sb strings.Builder
	for i, item := range l.items {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, item)
	}
	return sb.String()
}

func (l *List) Map(fn func(v any) any) []any {
	out := make([]any, len(l.items))
	for i, item := range l.items {
		out[i] = fn(item)
	}
	return out
}

func (l *List) Filter(fn func(v any) bool) []any {
	var out []any
	for _, item := range l.items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

func (l *List) Each(fn func(i int, v any)) {
	for i, item := range l.items {
		fn(i, item)
	}
}

// Items returns a copy of the element storage.
func (l *List) Items() []any {
	out := make([]any, len(l.items))
	copy(out, l.items)
	return out
}
