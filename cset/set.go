package cset

import (
	"io"
	"reflect"
	"slices"

	"github.com/dmcfalls/CSet/assert"
	"github.com/dmcfalls/CSet/compare"
	"github.com/dmcfalls/CSet/zero"
)

// DefaultCapacity is the initial capacity used when no hint (or a hint of
// zero) is given to New.
const DefaultCapacity = 32

// growthFactor is applied to the capacity whenever the element buffer fills up.
const growthFactor = 2

// A Set is a collection of distinct elements kept in ascending order.
//
// Elements are stored by value in a single contiguous buffer, sorted
// according to the ordering function supplied to New. Keeping the buffer
// sorted lets every lookup use binary search and lets iteration yield
// elements in order. Two elements are considered equal when the ordering
// function returns zero for them, so the ordering function alone defines
// distinctness.
//
// The zero value of Set is not usable; create sets with New.
type Set[T any] struct {
	elems    []T
	capacity int
	elemSize uintptr
	cmp      compare.Func[T]
	dispose  func(T)
	format   func(T) string
}

var _ io.Closer = (*Set[int])(nil)

// New creates an empty set ordered by cmp. The ordering function is
// required and must impose a total order on T; New panics when it is nil.
//
// By default the set starts with room for DefaultCapacity elements and no
// dispose or format hook. Use WithCapacity, WithDispose and WithFormat to
// override. The capacity is only a starting point, not a limit: the buffer
// doubles whenever it fills up.
func New[T any](cmp compare.Func[T], opts ...Option[T]) *Set[T] {
	assert.True(cmp != nil, "New: ordering function is nil")

	s := &Set[T]{
		capacity: DefaultCapacity,
		elemSize: reflect.TypeFor[T]().Size(),
		cmp:      cmp,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.elems = make([]T, 0, s.capacity)

	return s
}

// Add inserts a copy of elem into the set. If an equal element (per the
// ordering function) is already present the set is left untouched and Add
// returns false. Otherwise the element is inserted at its ascending
// position and Add returns true.
//
// Time complexity: O(log n) search plus an O(n) worst-case shift.
func (s *Set[T]) Add(elem T) bool {
	assert.True(s != nil, "Add: set is nil")
	assert.True(s.capacity > 0, "Add: set is destroyed or was not created with New")

	index, found := slices.BinarySearchFunc(s.elems, elem, s.cmp)
	if found {
		return false
	}

	// Grow before the shift so the buffer always keeps a free slot.
	if len(s.elems) >= s.capacity-1 {
		s.grow()
	}

	s.elems = append(s.elems, elem)
	copy(s.elems[index+1:], s.elems[index:])
	s.elems[index] = elem

	return true
}

// AddAll inserts every given element via Add and returns how many of them
// were actually inserted (duplicates are skipped, both against the set and
// among the arguments).
func (s *Set[T]) AddAll(elems ...T) int {
	added := 0

	for _, elem := range elems {
		if s.Add(elem) {
			added++
		}
	}

	return added
}

// Remove deletes the element equal to elem from the set. If no such
// element exists, Remove returns false and the set is unchanged. Otherwise
// the dispose hook (if any) is invoked on the stored element exactly once,
// the element is removed and Remove returns true. The capacity is untouched.
//
// Time complexity: O(log n) search plus an O(n) worst-case shift.
func (s *Set[T]) Remove(elem T) bool {
	assert.True(s != nil, "Remove: set is nil")
	assert.True(s.capacity > 0, "Remove: set is destroyed or was not created with New")

	index, found := slices.BinarySearchFunc(s.elems, elem, s.cmp)
	if !found {
		return false
	}

	if s.dispose != nil {
		s.dispose(s.elems[index])
	}

	last := len(s.elems) - 1
	copy(s.elems[index:], s.elems[index+1:])

	// Zero the vacated slot so the buffer does not pin the removed element.
	s.elems[last] = zero.Value[T]()
	s.elems = s.elems[:last]

	return true
}

// Contains reports whether the set holds an element equal to elem, judged
// by the ordering function. A nil set contains nothing.
//
// Time complexity: O(log n).
func (s *Set[T]) Contains(elem T) bool {
	if s == nil {
		return false
	}

	_, found := slices.BinarySearchFunc(s.elems, elem, s.cmp)

	return found
}

// Size returns the number of elements in the set. A nil set has size zero.
func (s *Set[T]) Size() int {
	if s == nil {
		return 0
	}

	return len(s.elems)
}

// Cardinality returns the number of elements in the set. It is an alias
// for Size using set terminology.
func (s *Set[T]) Cardinality() int {
	return s.Size()
}

// IsEmpty reports whether the set holds no elements. A nil set is empty.
func (s *Set[T]) IsEmpty() bool {
	return s.Size() == 0
}

// Cap returns the current capacity of the element buffer. The capacity
// grows by doubling as elements are added and never shrinks.
func (s *Set[T]) Cap() int {
	if s == nil {
		return 0
	}

	return s.capacity
}

// ElemSize returns the in-memory size of one element slot in bytes. All
// elements of a set occupy slots of this fixed size.
func (s *Set[T]) ElemSize() uintptr {
	if s == nil {
		return reflect.TypeFor[T]().Size()
	}

	return s.elemSize
}

// Entries returns the elements in ascending order as a freshly allocated
// slice. Mutating the returned slice does not affect the set.
func (s *Set[T]) Entries() []T {
	if s == nil {
		return nil
	}

	return slices.Clone(s.elems)
}

// Clear removes every element from the set, invoking the dispose hook (if
// any) on each one in ascending order. The capacity is untouched, so the
// set can be refilled without reallocating. Equivalent to removing every
// element one by one, but in a single pass with no shifting.
func (s *Set[T]) Clear() {
	if s == nil {
		return
	}

	if s.dispose != nil {
		for _, elem := range s.elems {
			s.dispose(elem)
		}
	}

	clear(s.elems)
	s.elems = s.elems[:0]
}

// Destroy releases the set: every element is disposed (as in Clear) and
// the buffer is released. Destroy is safe to call on a nil set and is
// idempotent. After Destroy, queries report an empty set; Add and Remove
// panic.
//
// For nested sets, teardown is depth-first: a dispose hook of DisposeSet
// (or DisposeHandle) destroys the inner sets before the outer buffer is
// released.
func (s *Set[T]) Destroy() {
	if s == nil {
		return
	}

	s.Clear()

	s.elems = nil
	s.capacity = 0
}

// Close destroys the set and returns nil. It exists so a Set satisfies
// io.Closer and can be handed to cleanup helpers that expect one.
func (s *Set[T]) Close() error {
	s.Destroy()

	return nil
}

// Clone returns a new set with the same ordering, hooks, capacity and
// elements as s. The elements are value copies; any pointers inside them
// are shared with the original. A nil set clones to nil.
func (s *Set[T]) Clone() *Set[T] {
	if s == nil {
		return nil
	}

	dst := s.emptyLike()
	dst.elems = append(dst.elems, s.elems...)

	return dst
}

// Filter returns a new set, with the same ordering and hooks as s, holding
// exactly the elements for which pred returns true. A nil set filters to nil.
func (s *Set[T]) Filter(pred func(T) bool) *Set[T] {
	if s == nil {
		return nil
	}

	dst := s.emptyLike()

	for _, elem := range s.elems {
		if pred(elem) {
			dst.Add(elem)
		}
	}

	return dst
}

// Equal reports whether s and other hold equal elements in the canonical
// ordering sense, i.e. CompareSets(s, other) == 0. A nil set equals only
// another nil set; an empty set is not nil.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return CompareSets(s, other) == 0
}

// emptyLike returns a new empty set with the same ordering, hooks and
// capacity hint as s.
func (s *Set[T]) emptyLike() *Set[T] {
	return New(s.cmp,
		WithCapacity[T](s.capacity),
		WithDispose(s.dispose),
		WithFormat(s.format))
}

// grow doubles the capacity and moves the elements to a buffer of the new
// size. Positions are preserved.
func (s *Set[T]) grow() {
	s.capacity *= growthFactor

	elems := make([]T, len(s.elems), s.capacity)
	copy(elems, s.elems)
	s.elems = elems
}
