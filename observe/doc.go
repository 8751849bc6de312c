// Package observe is the interception layer that makes in-place mutation of
// container values visible to the reactive engine. Wrapping a container
// through a Registry yields a wrapper bound to an OnMutate callback; every
// mutating operation on the wrapper (and on containers reached through it)
// fires that callback after the underlying change lands.
//
// Interception is polymorphic over container kind rather than driven by
// method-name inspection: each supported kind has a dedicated wrapper type
// with an explicit mutation classification. Unknown object types are
// conservative, any method call through them counts as a mutation.
package observe
