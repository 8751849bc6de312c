package observe

import (
	"reflect"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// OnMutate is invoked after an observed container changes in place.
type OnMutate func()

type cacheEntry struct {
	kind    Kind
	wrapper any
	// raw keeps the keyed allocation reachable. A List reallocates its
	// storage on growth and stops referencing the original backing array;
	// without the pin that array could be collected and a new container
	// at the recycled address would collide with this entry.
	raw any
}

// Registry deduplicates wrappers per source container: wrapping the same
// container twice yields the same wrapper, so identity comparisons and
// repeated access through nested structures stay stable. The first
// OnMutate a container is wrapped with stays bound to its wrapper.
type Registry struct {
	entries map[uintptr]cacheEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: map[uintptr]cacheEntry{}}
}

// Wrap returns v unchanged if it is not reactive-eligible, v itself if it
// is already a wrapper, and otherwise a cached or freshly built wrapper
// bound to onMutate.
func (r *Registry) Wrap(v any, onMutate OnMutate) any {
	if isWrapper(v) {
		return v
	}

	kind := KindOf(v)
	switch kind {
	case KindValue, KindExcluded:
		return v
	case KindTime:
		// Temporal values are Go values, not references; identity caching
		// does not apply. Stability comes from the wrapper being written
		// back into whatever container held the raw value.
		switch t := v.(type) {
		case time.Time:
			return newTimestamp(t, onMutate)
		case *time.Time:
			return newTimestamp(*t, onMutate)
		}
	}

	key := identityKey(v)
	if key != 0 {
		if e, ok := r.entries[key]; ok && e.kind == kind {
			return e.wrapper
		}
	}

	var w any
	switch kind {
	case KindList:
		w = newList(r, v.([]any), onMutate)
	case KindDict:
		w = newDict(r, v.(map[string]any), onMutate)
	case KindSet:
		w = newSet(v.(mapset.Set[any]), onMutate)
	case KindBuffer:
		w = newBuffer(v.([]byte), onMutate)
	case KindOpaque:
		w = newObject(r, v, onMutate)
	default:
		return v
	}

	if key != 0 {
		r.entries[key] = cacheEntry{kind: kind, wrapper: w, raw: v}
	}
	return w
}

// identityKey derives a cache key from the container's backing storage.
// Empty slices have no stable address and are simply not cached.
func identityKey(v any) uintptr {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Len() == 0 {
			return 0
		}
		return rv.Pointer()
	case reflect.Map, reflect.Pointer:
		// Sets arrive as an interface whose dynamic type is a pointer.
		return rv.Pointer()
	}
	return 0
}
