package cset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcfalls/CSet/compare"
)

// TestPowerSet tests power set generation.
func TestPowerSet(t *testing.T) {
	t.Parallel()

	t.Run("concrete scenario", func(t *testing.T) {
		t.Parallel()

		s := intSet(1, 3, 5)
		defer s.Destroy()

		power := PowerSet(s)
		defer power.Destroy()

		// 2^3 members; the set collapses duplicates, so exactly 8 members
		// means all subsets are distinct.
		require.Equal(t, 8, power.Size())

		empty := intSet()
		defer empty.Destroy()

		assert.True(t, power.Contains(empty))
		assert.True(t, power.Contains(s))

		for _, subset := range power.Entries() {
			assert.True(t, subset.IsSubsetOf(s))
		}
	})

	t.Run("power set of the empty set", func(t *testing.T) {
		t.Parallel()

		s := intSet()
		defer s.Destroy()

		power := PowerSet(s)
		defer power.Destroy()

		require.Equal(t, 1, power.Size())
		assert.True(t, power.Entries()[0].IsEmpty())
	})

	t.Run("size law for seven elements", func(t *testing.T) {
		t.Parallel()

		s := intSet(1, 2, 3, 4, 5, 6, 7)
		defer s.Destroy()

		power := PowerSet(s)
		defer power.Destroy()

		assert.Equal(t, 128, power.Size())
	})

	t.Run("the empty subset stays tiny", func(t *testing.T) {
		t.Parallel()

		s := intSet(1, 2)
		defer s.Destroy()

		power := PowerSet(s)
		defer power.Destroy()

		// Members sort by cardinality, so the empty subset comes first. Its
		// capacity hint of 1 must be honored, not replaced by the default.
		first := power.Entries()[0]
		require.True(t, first.IsEmpty())
		assert.Equal(t, 1, first.Cap())
	})

	t.Run("subsets inherit hooks and render recursively", func(t *testing.T) {
		t.Parallel()

		s := New(compare.Ordered[int](), WithFormat(formatInt))
		defer s.Destroy()

		s.AddAll(1, 2)

		power := PowerSet(s)
		defer power.Destroy()

		assert.Equal(t, "{{}, {1}, {2}, {1, 2}}", power.String())
	})

	t.Run("destroying the power set tears down every subset", func(t *testing.T) {
		t.Parallel()

		disposed := 0

		s := New(compare.Ordered[int](), WithDispose(func(int) {
			disposed++
		}))
		defer s.Destroy()

		s.AddAll(1, 2, 3)

		power := PowerSet(s)
		power.Destroy()

		// Each of the 3 elements is copied into half of the 8 subsets, so
		// depth-first teardown disposes 3 * 4 copies.
		assert.Equal(t, 12, disposed)
	})

	t.Run("contract violations", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "PowerSet: set is nil", func() {
			PowerSet[int](nil)
		})

		big := New(compare.Ordered[int]())
		defer big.Destroy()

		for n := range MaxPowerSetCardinality + 1 {
			big.Add(n)
		}

		require.PanicsWithValue(t,
			"PowerSet: cardinality 31 exceeds the limit of 30", func() {
				PowerSet(big)
			})
	})
}
