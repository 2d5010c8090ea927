// Package assert provides contract checks for programmer errors.
//
// The panic-style checks (True, False, Nil, NotNil, NonEmptySlice) guard
// invariants that only a coding mistake can violate. They panic on failure
// and can be compiled out with the "assertions_disabled" build tag, in which
// case every check becomes a no-op.
//
// Type is different: it performs a checked type assertion and reports the
// mismatch as an ordinary error, because recovering a concrete type from an
// interface value is a legitimate runtime operation, not a contract.
package assert

import (
	"fmt"

	"github.com/dmcfalls/CSet/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error indicating the mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}
