package sortable

import (
	"github.com/dmcfalls/CSet/compare"
)

// Sortable is the contract for types that carry their own ordering:
// equality from compare.Comparable plus a strict less-than.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare derives a three-way ordering function from a type's Sortable
// contract. The result is suitable for constructing ordered containers
// from method-based types.
func Compare[T Sortable[T]]() compare.Func[T] {
	return func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case b.LessThan(a):
			return 1
		default:
			return 0
		}
	}
}
