package cset

import "cmp"

// This file provides the canonical hooks for sets whose elements are
// themselves sets of one element type. Passing CompareSets, DisposeSet and
// FormatSet to New yields a working set-of-sets with ordered, destroyable,
// printable members and no per-use-case boilerplate:
//
//	outer := cset.New(cset.CompareSets[int],
//		cset.WithDispose(cset.DisposeSet[int]),
//		cset.WithFormat(cset.FormatSet[int]))
//
// PowerSet builds its result exactly this way. For sets mixing element
// types behind one interface, see Handle and its hooks instead.

// CompareSets is the canonical ordering for sets themselves: sets compare
// first by cardinality, then element by element using the first set's
// ordering function. Two sets at the same address are equal by identity.
// A nil set sorts before every non-nil set, including the empty one.
func CompareSets[T any](a, b *Set[T]) int {
	if a == b {
		return 0
	}

	if a == nil {
		return -1
	}

	if b == nil {
		return 1
	}

	if d := cmp.Compare(a.Size(), b.Size()); d != 0 {
		return d
	}

	// The element size criterion of the canonical ordering is fixed by T
	// here; it only discriminates across element types (see CompareHandles).

	for i := range a.elems {
		if d := a.cmp(a.elems[i], b.elems[i]); d != 0 {
			return d
		}
	}

	return 0
}

// DisposeSet is the canonical dispose hook for nested sets: it destroys
// the inner set, elements first, buffer after.
func DisposeSet[T any](s *Set[T]) {
	s.Destroy()
}

// FormatSet is the canonical format hook for nested sets: it renders the
// inner set via String, so a set without a format hook of its own shows up
// as the opaque placeholder rather than failing.
func FormatSet[T any](s *Set[T]) string {
	return s.String()
}
