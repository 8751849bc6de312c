package observe

import "reflect"

// Identical is the strict-equality check used everywhere a write decides
// whether anything actually changed. Comparable values compare by ==;
// reference kinds (slices, maps, funcs, channels, pointers) compare by
// identity. Values of different dynamic types are never identical.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Slice:
		if ra.Len() != rb.Len() {
			return false
		}
		if ra.Len() == 0 {
			return ra.IsNil() == rb.IsNil()
		}
		return ra.Pointer() == rb.Pointer()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	default:
		if !ra.Type().Comparable() {
			return false
		}
		return a == b
	}
}
