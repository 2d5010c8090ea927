package cset

import (
	"math/bits"

	"github.com/dmcfalls/CSet/assert"
)

// MaxPowerSetCardinality is the largest set PowerSet accepts. The power
// set of n elements has 2^n members, so the bound keeps the bit-vector
// enumeration within a plain int and the result within plausible memory.
const MaxPowerSetCardinality = 30

// PowerSet returns the set of all subsets of s, including the empty set
// and s itself: 2^n members for a set of cardinality n.
//
// The result is a set of sets wired with the canonical hooks (CompareSets,
// DisposeSet, FormatSet) and a capacity hint of exactly 2^n. Every subset
// is a fresh set with s's ordering, dispose and format hooks and a
// capacity hint equal to its own cardinality; the empty subset is built
// outside the enumeration with a hint of 1, since a hint of 0 would select
// the default capacity. Each subset owns its element copies, and the
// dispose hook, when present, runs once per copy on teardown.
//
// Subsets are enumerated by bit vector: vector 0b101 selects the elements
// at positions 0 and 2 of s's ascending order. Counting the vector from 1
// to 2^n-1 visits every nonempty subset exactly once, and the popcount of
// the vector pre-sizes the subset.
//
// A nil set or one with more than MaxPowerSetCardinality elements is a
// contract violation.
//
// Time complexity: O(2^n * n).
func PowerSet[T any](s *Set[T]) *Set[*Set[T]] {
	assert.True(s != nil, "PowerSet: set is nil")

	n := s.Size()
	assert.True(n <= MaxPowerSetCardinality,
		"PowerSet: cardinality %d exceeds the limit of %d", n, MaxPowerSetCardinality)

	power := New(CompareSets[T],
		WithCapacity[*Set[T]](1<<n),
		WithDispose(DisposeSet[T]),
		WithFormat(FormatSet[T]))

	empty := New(s.cmp,
		WithCapacity[T](1),
		WithDispose(s.dispose),
		WithFormat(s.format))
	power.Add(empty)

	for vector := 1; vector < 1<<n; vector++ {
		subset := New(s.cmp,
			WithCapacity[T](bits.OnesCount(uint(vector))),
			WithDispose(s.dispose),
			WithFormat(s.format))

		for i := range n {
			if vector>>i&1 == 1 {
				subset.Add(s.elems[i])
			}
		}

		power.Add(subset)
	}

	return power
}
