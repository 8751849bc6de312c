package observe

import "reflect"

// Object intercepts a pointer-to-struct with no dedicated wrapper. There
// is no way to classify arbitrary methods, so every Invoke conservatively
// counts as a mutation; field writes go through the usual identical-value
// guard.
type Object struct {
	reg     *Registry
	mutated OnMutate
	ptr     reflect.Value
}

func newObject(reg *Registry, v any, mutated OnMutate) *Object {
	return &Object{reg: reg, mutated: mutated, ptr: reflect.ValueOf(v)}
}

// Raw returns the wrapped pointer.
func (o *Object) Raw() any { return o.ptr.Interface() }

// Get reads an exported field by name, wrapping containers found in
// place. Interface-typed fields get the wrapper written back; typed
// reference fields stay stable through the registry cache instead.
func (o *Object) Get(field string) any {
	f := o.ptr.Elem().FieldByName(field)
	if !f.IsValid() {
		return nil
	}
	v := f.Interface()
	w := o.reg.Wrap(v, o.mutated)
	if isWrapper(w) && !isWrapper(v) && f.Kind() == reflect.Interface && f.CanSet() {
		f.Set(reflect.ValueOf(w))
	}
	return w
}

// Set writes an exported field by name. Unknown or unassignable fields
// and strictly identical values are no-ops.
func (o *Object) Set(field string, v any) {
	f := o.ptr.Elem().FieldByName(field)
	if !f.IsValid() || !f.CanSet() {
		return
	}
	if Identical(f.Interface(), v) {
		return
	}
	if v == nil {
		f.Set(reflect.Zero(f.Type()))
	} else {
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(f.Type()) {
			return
		}
		f.Set(rv)
	}
	o.mutated()
}

// Invoke calls an exported method by name and notifies afterwards, no
// matter what the method did. Returns the call results, or nil when the
// method does not exist.
func (o *Object) Invoke(method string, args ...any) []any {
	m := o.ptr.MethodByName(method)
	if !m.IsValid() {
		return nil
	}
	in := make([]reflect.Value, len(args))
	mt := m.Type()
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(mt.In(i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	out := m.Call(in)
	o.mutated()
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results
}
