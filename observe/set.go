package observe

import mapset "github.com/deckarep/golang-set/v2"

// Set intercepts a set-like collection. Set operation names are ambiguous
// about whether anything changed (adding a present element, removing an
// absent one), so mutation is classified by comparing cardinality before
// and after the underlying call.
type Set struct {
	mutated OnMutate
	s       mapset.Set[any]
}

func newSet(s mapset.Set[any], mutated OnMutate) *Set {
	return &Set{mutated: mutated, s: s}
}

func (s *Set) Len() int { return s.s.Cardinality() }

func (s *Set) Contains(v any) bool { return s.s.Contains(v) }

func (s *Set) Add(v any) {
	before := s.s.Cardinality()
	s.s.Add(v)
	if s.s.Cardinality() != before {
		s.mutated()
	}
}

func (s *Set) Remove(v any) {
	before := s.s.Cardinality()
	s.s.Remove(v)
	if s.s.Cardinality() != before {
		s.mutated()
	}
}

func (s *Set) Clear() {
	if s.s.Cardinality() == 0 {
		return
	}
	s.s.Clear()
	s.mutated()
}

func (s *Set) ToSlice() []any { return s.s.ToSlice() }

// Each visits every element. Returning true from fn stops the walk.
func (s *Set) Each(fn func(v any) bool) { s.s.Each(fn) }
