package cset

import "github.com/dmcfalls/CSet/compare"

// Dedup returns the distinct values, in ascending order per cmp. The
// input is not modified.
func Dedup[T any](cmp compare.Func[T], values []T) []T {
	s := New(cmp, WithCapacity[T](len(values)+1))
	defer s.Destroy()

	s.AddAll(values...)

	return s.Entries()
}

// CountDuplicates returns how many of the given values are duplicates of
// an earlier value, judged by cmp.
func CountDuplicates[T any](cmp compare.Func[T], values []T) int {
	s := New(cmp, WithCapacity[T](len(values)+1))
	defer s.Destroy()

	return len(values) - s.AddAll(values...)
}

// HasDuplicates reports whether any value occurs more than once, judged
// by cmp.
func HasDuplicates[T any](cmp compare.Func[T], values []T) bool {
	return CountDuplicates(cmp, values) > 0
}
