package cset

import (
	"iter"

	"github.com/dmcfalls/CSet/assert"
	"github.com/dmcfalls/CSet/optional"
)

// Pos is a position in a set's ascending element order, as yielded by
// First and Next and consumed by At. Positions are only meaningful for the
// set that produced them and only until that set is next mutated; using a
// stale position is a contract violation.
type Pos int

// First returns the position of the least element, or no value when the
// set is empty (or nil). Together with Next it forms a restartable,
// forward-only traversal in ascending order:
//
//	for p := s.First(); p.NonEmpty(); p = s.Next(p.GetOrPanic()) {
//		visit(s.At(p.GetOrPanic()))
//	}
//
// Prefer All for plain traversals; First and Next exist for callers that
// need to suspend and resume a walk.
func (s *Set[T]) First() optional.Value[Pos] {
	if s.IsEmpty() {
		return optional.None[Pos]()
	}

	return optional.Some(Pos(0))
}

// Next returns the position following p, or no value when p is the last
// position. Passing a position that is out of range is a contract
// violation.
func (s *Set[T]) Next(p Pos) optional.Value[Pos] {
	assert.True(p >= 0 && int(p) < s.Size(), "Next: position %d out of range", int(p))

	if int(p)+1 >= s.Size() {
		return optional.None[Pos]()
	}

	return optional.Some(p + 1)
}

// At returns the element at position p. Passing a position that is out of
// range is a contract violation.
func (s *Set[T]) At(p Pos) T {
	assert.True(p >= 0 && int(p) < s.Size(), "At: position %d out of range", int(p))

	return s.elems[p]
}

// All returns an iterator over the elements in ascending order. The
// sequence is restartable: ranging over it again restarts from the least
// element. The set must not be mutated during traversal.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}

		for _, elem := range s.elems {
			if !yield(elem) {
				return
			}
		}
	}
}
