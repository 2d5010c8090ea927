// Package cset implements a generic ordered set backed by a sorted array.
//
// # Overview
//
// A [Set] keeps its elements in a single contiguous buffer, sorted at all
// times by the ordering function bound at construction. Keeping the buffer
// sorted is unusual for a set, but it buys O(log n) membership tests via
// binary search, ordered iteration for free, and cheap element-wise
// comparison of whole sets. The trade-off is an O(n) worst-case shift on
// insertion and removal.
//
// The ordering function is the single source of truth for element
// identity: two elements are the same element exactly when the ordering
// function returns zero for them. Optional hooks supplied at construction
// round out element behavior: a dispose hook runs exactly once on each
// element as it leaves the set, and a format hook renders elements for
// [Set.Format] and [Set.String].
//
// On top of the container sit the classical set operations: [Union],
// [Intersect], [Difference], [SymmetricDifference], [Set.IsSubsetOf] and
// [PowerSet], all expressed in terms of the Add and Contains primitives.
//
// # Usage
//
//	numbers := cset.New(compare.Ordered[int]())
//	defer numbers.Destroy()
//
//	numbers.AddAll(5, 2, 8, 2)           // {2, 5, 8}
//	numbers.Contains(5)                  // true
//	numbers.Remove(2)                    // true, now {5, 8}
//
//	for n := range numbers.All() {       // ascending
//	    fmt.Println(n)
//	}
//
// The capacity hint tunes the initial buffer; the buffer doubles whenever
// it fills and never shrinks:
//
//	small := cset.New(compare.Ordered[int](), cset.WithCapacity[int](4))
//
// # Nested Sets
//
// Sets nest. The canonical hooks [CompareSets], [DisposeSet] and
// [FormatSet] make a set of sets work out of the box, ordering members by
// cardinality and then element by element, destroying them depth-first,
// and rendering them recursively. [PowerSet] is built on exactly this
// protocol. For sets whose members are sets of different element types,
// the [Handle] interface and its hooks [CompareHandles], [DisposeHandle]
// and [FormatHandle] provide the same protocol over a type-erased view.
//
// # Ownership
//
// Elements are stored by value: Add copies its argument in, and the set is
// the sole owner of that copy thereafter. Pointers inside an element still
// point at shared data, so disposing an element whose payload is reachable
// elsewhere is the caller's call to make. Nested sets form a tree of
// exclusive ownership; a set must not contain itself, directly or
// transitively.
//
// # Thread Safety
//
// A Set performs no internal locking. Every operation runs synchronously
// on the calling goroutine, and concurrent use of one set requires
// external synchronization. Distinct sets are independent.
package cset
