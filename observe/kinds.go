package observe

import (
	"reflect"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// Kind classifies a value for interception purposes.
type Kind uint8

const (
	// KindValue marks values that are not reactive-eligible: primitives,
	// nil, funcs, channels and plain value structs. They pass through
	// Wrap unchanged.
	KindValue Kind = iota
	// KindList is a sequential collection, []any.
	KindList
	// KindDict is a string-keyed collection, map[string]any.
	KindDict
	// KindSet is a set-like collection, mapset.Set[any].
	KindSet
	// KindBuffer is a fixed-width byte view, []byte.
	KindBuffer
	// KindTime is a temporal value, time.Time.
	KindTime
	// KindOpaque is a pointer to a struct with no dedicated wrapper.
	KindOpaque
	// KindExcluded marks containers whose contents cannot be reliably
	// observed. They are never wrapped.
	KindExcluded
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindSet:
		return "set"
	case KindBuffer:
		return "buffer"
	case KindTime:
		return "time"
	case KindOpaque:
		return "opaque"
	case KindExcluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// KindOf reports how a raw value would be intercepted. Wrapper values
// report the kind of the container they wrap.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindValue
	case *List:
		return KindList
	case *Dict:
		return KindDict
	case *Set:
		return KindSet
	case *Buffer:
		return KindBuffer
	case *Timestamp:
		return KindTime
	case *Object:
		return KindOpaque
	case []any:
		return KindList
	case map[string]any:
		return KindDict
	case mapset.Set[any]:
		return KindSet
	case []byte:
		return KindBuffer
	case time.Time, *time.Time:
		return KindTime
	case *sync.Map, sync.Map:
		return KindExcluded
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		return KindOpaque
	}
	return KindValue
}

func isWrapper(v any) bool {
	switch v.(type) {
	case *List, *Dict, *Set, *Buffer, *Timestamp, *Object:
		return true
	}
	return false
}
