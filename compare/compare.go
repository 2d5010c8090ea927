package compare

import (
	"bytes"
	"cmp"
	"strings"

	"facette.io/natsort"
	"github.com/google/uuid"
)

// Func is a three-way ordering function. It returns a negative value when
// a sorts before b, zero when the two are equal, and a positive value when
// a sorts after b.
//
// A Func must define a total order: for any inputs, exactly one of
// f(a, b) < 0, f(a, b) == 0, or f(a, b) > 0 holds, and f(a, b) and f(b, a)
// always have opposite signs.
type Func[T any] func(a, b T) int

// Ordered returns an ordering function for any type with built-in ordering
// (integers, floats, strings).
func Ordered[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse returns an ordering function that inverts the given one, turning
// an ascending order into a descending one.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// FromLess derives a three-way ordering function from a strict less-than
// predicate. Values for which neither less(a, b) nor less(b, a) holds are
// considered equal.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Natural returns an ordering function for strings that compares embedded
// digit runs numerically, so "file2" sorts before "file10".
//
// Strings that natural ordering considers equal but that differ as plain
// strings (such as "a01" and "a1") fall back to lexicographic comparison,
// keeping the order total.
func Natural() Func[string] {
	return func(a, b string) int {
		switch {
		case a == b:
			return 0
		case natsort.Compare(a, b):
			return -1
		case natsort.Compare(b, a):
			return 1
		default:
			return strings.Compare(a, b)
		}
	}
}

// UUIDs returns an ordering function for uuid.UUID values based on their
// big-endian byte representation.
func UUIDs() Func[uuid.UUID] {
	return func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	}
}

// Bytes returns an ordering function for byte slices using lexicographic
// byte-wise comparison.
func Bytes() Func[[]byte] {
	return bytes.Compare
}
