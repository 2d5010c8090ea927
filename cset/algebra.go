package cset

// This file implements the classical set algebra on top of the Add and
// Contains primitives. Every operation allocates a fresh result set, even
// in degenerate cases such as identical operands, and the result always
// carries the first operand's ordering, hooks and capacity hint. A nil
// operand short-circuits to a nil result.
//
// Operand compatibility (same element type, same ordering semantics) is a
// caller obligation. The element type is pinned by the shared type
// parameter, so unlike a type-erased container there is no size mismatch
// to detect at run time; only the orderings can disagree, and the first
// operand's ordering wins.

// IsSubsetOf reports whether every element of s is contained in other.
// An empty (or nil) set is a subset of everything. Comparison is judged
// by s's ordering function.
//
// Time complexity: O(n log m).
func (s *Set[T]) IsSubsetOf(other *Set[T]) bool {
	// If s and other are the same instance, s must be a subset of other.
	if s == other {
		return true
	}

	if s.IsEmpty() {
		return true
	}

	if other == nil {
		return false
	}

	for _, elem := range s.elems {
		if !other.Contains(elem) {
			return false
		}
	}

	return true
}

// Union returns a new set containing every element of a and every element
// of b. Duplicates collapse via Add. Returns nil if either operand is nil.
func Union[T any](a, b *Set[T]) *Set[T] {
	if a == nil || b == nil {
		return nil
	}

	return unionInto(a.emptyLike(), a, b)
}

// Intersect returns a new set containing the elements that appear in both
// a and b. Returns nil if either operand is nil.
//
// The smaller-cardinality operand is scanned and each of its elements is
// looked up in the other; which operand is scanned never changes the result.
func Intersect[T any](a, b *Set[T]) *Set[T] {
	if a == nil || b == nil {
		return nil
	}

	small, large := a, b
	if large.Size() < small.Size() {
		small, large = large, small
	}

	result := a.emptyLike()

	for _, elem := range small.elems {
		if large.Contains(elem) {
			result.Add(elem)
		}
	}

	return result
}

// Difference returns a new set containing the elements of a that are not
// contained in b. Returns nil if either operand is nil.
func Difference[T any](a, b *Set[T]) *Set[T] {
	if a == nil || b == nil {
		return nil
	}

	return differenceInto(a.emptyLike(), a, b)
}

// SymmetricDifference returns a new set containing the elements that
// appear in exactly one of a and b, i.e. the union of Difference(a, b)
// and Difference(b, a). Returns nil if either operand is nil.
func SymmetricDifference[T any](a, b *Set[T]) *Set[T] {
	if a == nil || b == nil {
		return nil
	}

	// The intermediate differences carry no dispose or format hook: their
	// elements are copies whose payloads live on in the result, so releasing
	// the intermediates must only release their buffers.
	onlyA := differenceInto(newBare(a), a, b)
	onlyB := differenceInto(newBare(b), b, a)

	defer onlyA.Destroy()
	defer onlyB.Destroy()

	return unionInto(a.emptyLike(), onlyA, onlyB)
}

// unionInto adds every element of a and then every element of b to dst.
func unionInto[T any](dst, a, b *Set[T]) *Set[T] {
	for _, elem := range a.elems {
		dst.Add(elem)
	}

	for _, elem := range b.elems {
		dst.Add(elem)
	}

	return dst
}

// differenceInto adds to dst every element of a not contained in b.
func differenceInto[T any](dst, a, b *Set[T]) *Set[T] {
	for _, elem := range a.elems {
		if !b.Contains(elem) {
			dst.Add(elem)
		}
	}

	return dst
}

// newBare returns an empty set ordered like s, with s's capacity hint but
// no dispose or format hook.
func newBare[T any](s *Set[T]) *Set[T] {
	return New(s.cmp, WithCapacity[T](s.capacity))
}
