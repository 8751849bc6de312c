package observe

import "sort"

// Dict intercepts a string-keyed collection backed by map[string]any.
// Maps are reference values in Go, so the wrapper shares storage with the
// raw map it was built from.
//
// Mutating operations: Set, Delete. Everything else reads without
// notifying.
type Dict struct {
	reg     *Registry
	mutated OnMutate
	m       map[string]any
}

func newDict(reg *Registry, m map[string]any, mutated OnMutate) *Dict {
	return &Dict{reg: reg, mutated: mutated, m: m}
}

func (d *Dict) Len() int { return len(d.m) }

func (d *Dict) Has(k string) bool {
	_, ok := d.m[k]
	return ok
}

// Get returns the value under k, or nil when absent. Containers found in
// place are wrapped with the dict's own mutation callback and written
// back.
func (d *Dict) Get(k string) any {
	v, ok := d.m[k]
	if !ok {
		return nil
	}
	w := d.reg.Wrap(v, d.mutated)
	if isWrapper(w) && !isWrapper(v) {
		d.m[k] = w
	}
	return w
}

// Lookup is Get with an existence report, for callers that store nil
// values on purpose.
func (d *Dict) Lookup(k string) (any, bool) {
	if !d.Has(k) {
		return nil, false
	}
	return d.Get(k), true
}

// Set writes v under k. Writing a strictly identical value over an
// existing entry is a no-op.
func (d *Dict) Set(k string, v any) {
	if cur, ok := d.m[k]; ok && Identical(cur, v) {
		return
	}
	d.m[k] = d.reg.Wrap(v, d.mutated)
	d.mutated()
}

// Delete removes k. Deleting an absent key is a no-op.
func (d *Dict) Delete(k string) {
	if _, ok := d.m[k]; !ok {
		return
	}
	delete(d.m, k)
	d.mutated()
}

// Keys returns the keys in sorted order for deterministic iteration.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d *Dict) Each(fn func(k string, v any)) {
	for _, k := range d.Keys() {
		fn(k, d.Get(k))
	}
}
