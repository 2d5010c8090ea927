package cset

import "github.com/dmcfalls/CSet/assert"

// Option is a functional option for configuring a set at creation time.
type Option[T any] func(*Set[T])

// WithCapacity sets the initial capacity of the element buffer. A hint of
// zero keeps the default (DefaultCapacity); any positive hint is honored
// verbatim, even a very small one such as 1, which is useful for sets that
// are known to stay tiny. Negative hints are a contract violation.
func WithCapacity[T any](hint int) Option[T] {
	return func(s *Set[T]) {
		assert.True(hint >= 0, "WithCapacity: negative capacity hint %d", hint)

		if hint > 0 {
			s.capacity = hint
		}
	}
}

// WithDispose sets the dispose hook. The hook is invoked exactly once on
// each element as it leaves the set, whether via Remove, Clear or Destroy.
// Use it when elements own resources that must be released with them, such
// as nested sets (see DisposeSet and DisposeHandle).
func WithDispose[T any](dispose func(T)) Option[T] {
	return func(s *Set[T]) {
		s.dispose = dispose
	}
}

// WithFormat sets the format hook used by Format and String to render one
// element as text. Without it, Format reports no value.
func WithFormat[T any](format func(T) string) Option[T] {
	return func(s *Set[T]) {
		s.format = format
	}
}
