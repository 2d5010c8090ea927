package cset

import (
	"cmp"
	"reflect"
	"strings"

	"github.com/dmcfalls/CSet/optional"
)

// A Handle is the type-erased view of a set, letting sets of different
// element types live side by side in one container. Every *Set[T]
// implements Handle; no other type can, since the interface carries
// unexported methods.
//
// A heterogeneous set of sets is built from the Handle hooks:
//
//	mixed := cset.New(cset.CompareHandles,
//		cset.WithDispose(cset.DisposeHandle),
//		cset.WithFormat(cset.FormatHandle))
//	mixed.Add(numbers) // a *Set[int]
//	mixed.Add(words)   // a *Set[string]
type Handle interface {
	// Cardinality returns the number of elements in the set.
	Cardinality() int

	// ElemSize returns the fixed in-memory size of one element slot.
	ElemSize() uintptr

	// Destroy releases the set, elements first, buffer after.
	Destroy()

	// Format renders the set if it has a format hook.
	Format() optional.Value[string]

	// String renders the set, falling back to a placeholder without a
	// format hook.
	String() string

	// compareTo orders two handles of equal cardinality and element size.
	// It seals the interface to this package.
	compareTo(other Handle) int

	// elemTypeName names the element type, breaking ordering ties between
	// distinct element types of equal size.
	elemTypeName() string
}

var _ Handle = (*Set[int])(nil)

// CompareHandles is the canonical ordering across sets of any element
// type: by cardinality, then by element size, then element by element
// using the first set's ordering function. Two handles of different
// element types that tie on both counts are ordered by their element type
// names, which keeps the order total and deterministic. A nil handle
// sorts before every non-nil one.
func CompareHandles(a, b Handle) int {
	if a == b {
		return 0
	}

	if a == nil {
		return -1
	}

	if b == nil {
		return 1
	}

	if d := cmp.Compare(a.Cardinality(), b.Cardinality()); d != 0 {
		return d
	}

	if d := cmp.Compare(a.ElemSize(), b.ElemSize()); d != 0 {
		return d
	}

	return a.compareTo(b)
}

// DisposeHandle is the canonical dispose hook for heterogeneous nested
// sets: it destroys the set behind the handle.
func DisposeHandle(h Handle) {
	if h == nil {
		return
	}

	h.Destroy()
}

// FormatHandle is the canonical format hook for heterogeneous nested
// sets: it renders the set behind the handle via String.
func FormatHandle(h Handle) string {
	if h == nil {
		return placeholder
	}

	return h.String()
}

// compareTo assumes equal cardinalities; CompareHandles establishes that
// before delegating here.
func (s *Set[T]) compareTo(other Handle) int {
	o, ok := other.(*Set[T])
	if !ok {
		// Different element types of the same size; fall back to the type
		// names for a deterministic order.
		return strings.Compare(s.elemTypeName(), other.elemTypeName())
	}

	for i := range s.elems {
		if d := s.cmp(s.elems[i], o.elems[i]); d != 0 {
			return d
		}
	}

	return 0
}

func (s *Set[T]) elemTypeName() string {
	return reflect.TypeFor[T]().String()
}
