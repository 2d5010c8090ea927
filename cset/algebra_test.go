package cset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcfalls/CSet/compare"
)

func intSet(elems ...int) *Set[int] {
	s := New(compare.Ordered[int]())
	s.AddAll(elems...)

	return s
}

// TestIsSubsetOf tests the subset relation.
func TestIsSubsetOf(t *testing.T) {
	t.Parallel()

	t.Run("concrete scenario", func(t *testing.T) {
		t.Parallel()

		a := intSet(1, 3, 5, 6, 9, 12, 15)
		defer a.Destroy()

		b := intSet(1, 2, 3, 4, 5, 6, 9, 12, 13, 15, 18, 19)
		defer b.Destroy()

		assert.True(t, a.IsSubsetOf(b))
		assert.False(t, b.IsSubsetOf(a))
	})

	t.Run("reflexive", func(t *testing.T) {
		t.Parallel()

		s := intSet(1, 2, 3)
		defer s.Destroy()

		assert.True(t, s.IsSubsetOf(s))

		empty := intSet()
		defer empty.Destroy()

		assert.True(t, empty.IsSubsetOf(empty))
	})

	t.Run("the empty set is a subset of everything", func(t *testing.T) {
		t.Parallel()

		empty := intSet()
		defer empty.Destroy()

		s := intSet(1)
		defer s.Destroy()

		assert.True(t, empty.IsSubsetOf(s))
		assert.False(t, s.IsSubsetOf(empty))
	})

	t.Run("nil sets", func(t *testing.T) {
		t.Parallel()

		var nilSet *Set[int]

		s := intSet(1)
		defer s.Destroy()

		assert.True(t, nilSet.IsSubsetOf(s))
		assert.True(t, nilSet.IsSubsetOf(nil))
		assert.False(t, s.IsSubsetOf(nil))
	})
}

// TestUnion tests the union operation.
func TestUnion(t *testing.T) {
	t.Parallel()

	t.Run("concrete scenario", func(t *testing.T) {
		t.Parallel()

		a := intSet(1, 2, 3, 4, 5)
		defer a.Destroy()

		b := intSet(4, 5, 6, 7, 8)
		defer b.Destroy()

		u := Union(a, b)
		defer u.Destroy()

		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, u.Entries())
	})

	t.Run("cardinality bound with equality iff disjoint", func(t *testing.T) {
		t.Parallel()

		a := intSet(1, 2, 3)
		defer a.Destroy()

		disjoint := intSet(4, 5)
		defer disjoint.Destroy()

		overlapping := intSet(3, 4)
		defer overlapping.Destroy()

		u1 := Union(a, disjoint)
		defer u1.Destroy()

		assert.Equal(t, a.Size()+disjoint.Size(), u1.Size())

		u2 := Union(a, overlapping)
		defer u2.Destroy()

		assert.Less(t, u2.Size(), a.Size()+overlapping.Size())
	})

	t.Run("identical operands still allocate a new set", func(t *testing.T) {
		t.Parallel()

		a := intSet(1, 2)
		defer a.Destroy()

		u := Union(a, a)
		defer u.Destroy()

		require.NotSame(t, a, u)
		assert.Equal(t, a.Entries(), u.Entries())
	})

	t.Run("nil operands", func(t *testing.T) {
		t.Parallel()

		a := intSet(1)
		defer a.Destroy()

		assert.Nil(t, Union(a, nil))
		assert.Nil(t, Union(nil, a))
		assert.Nil(t, Union[int](nil, nil))
	})

	t.Run("result carries the first operand's hooks and capacity", func(t *testing.T) {
		t.Parallel()

		a := New(compare.Ordered[int](), WithCapacity[int](64), WithFormat(formatInt))
		defer a.Destroy()

		a.AddAll(2, 1)

		b := intSet(3)
		defer b.Destroy()

		u := Union(a, b)
		defer u.Destroy()

		assert.Equal(t, 64, u.Cap())
		assert.Equal(t, "{1, 2, 3}", u.String())
	})
}

// TestIntersect tests the intersection operation.
func TestIntersect(t *testing.T) {
	t.Parallel()

	t.Run("concrete scenario", func(t *testing.T) {
		t.Parallel()

		a := intSet(1, 2, 3, 4, 5)
		defer a.Destroy()

		b := intSet(4, 5, 6, 7, 8)
		defer b.Destroy()

		i := Intersect(a, b)
		defer i.Destroy()

		assert.Equal(t, []int{4, 5}, i.Entries())
	})

	t.Run("operand order does not change the result", func(t *testing.T) {
		t.Parallel()

		// The smaller set is scanned either way; the outcome must match.
		small := intSet(2, 9)
		defer small.Destroy()

		large := intSet(1, 2, 3, 4, 5, 9)
		defer large.Destroy()

		ab := Intersect(small, large)
		defer ab.Destroy()

		ba := Intersect(large, small)
		defer ba.Destroy()

		assert.Equal(t, []int{2, 9}, ab.Entries())
		assert.Equal(t, []int{2, 9}, ba.Entries())
	})

	t.Run("disjoint operands intersect to the empty set", func(t *testing.T) {
		t.Parallel()

		a := intSet(1, 3)
		defer a.Destroy()

		b := intSet(2, 4)
		defer b.Destroy()

		i := Intersect(a, b)
		defer i.Destroy()

		assert.True(t, i.IsEmpty())
		require.NotNil(t, i)
	})

	t.Run("nil operands", func(t *testing.T) {
		t.Parallel()

		a := intSet(1)
		defer a.Destroy()

		assert.Nil(t, Intersect(a, nil))
		assert.Nil(t, Intersect(nil, a))
	})
}

// TestDifference tests the one-sided difference.
func TestDifference(t *testing.T) {
	t.Parallel()

	t.Run("concrete scenario", func(t *testing.T) {
		t.Parallel()

		a := intSet(1, 2, 3, 4, 5)
		defer a.Destroy()

		b := intSet(4, 5, 6, 7, 8)
		defer b.Destroy()

		ab := Difference(a, b)
		defer ab.Destroy()

		ba := Difference(b, a)
		defer ba.Destroy()

		assert.Equal(t, []int{1, 2, 3}, ab.Entries())
		assert.Equal(t, []int{6, 7, 8}, ba.Entries())
	})

	t.Run("difference with itself is empty", func(t *testing.T) {
		t.Parallel()

		a := intSet(1, 2, 3)
		defer a.Destroy()

		d := Difference(a, a)
		defer d.Destroy()

		assert.True(t, d.IsEmpty())
	})

	t.Run("nil operands", func(t *testing.T) {
		t.Parallel()

		a := intSet(1)
		defer a.Destroy()

		assert.Nil(t, Difference(a, nil))
		assert.Nil(t, Difference(nil, a))
	})
}

// TestSymmetricDifference tests the two-sided difference.
func TestSymmetricDifference(t *testing.T) {
	t.Parallel()

	t.Run("equals the union of the one-sided differences", func(t *testing.T) {
		t.Parallel()

		a := intSet(1, 2, 3, 4, 5)
		defer a.Destroy()

		b := intSet(4, 5, 6, 7, 8)
		defer b.Destroy()

		sym := SymmetricDifference(a, b)
		defer sym.Destroy()

		ab := Difference(a, b)
		defer ab.Destroy()

		ba := Difference(b, a)
		defer ba.Destroy()

		viaUnion := Union(ab, ba)
		defer viaUnion.Destroy()

		assert.Equal(t, []int{1, 2, 3, 6, 7, 8}, sym.Entries())
		assert.Equal(t, viaUnion.Entries(), sym.Entries())
	})

	t.Run("identical operands yield the empty set", func(t *testing.T) {
		t.Parallel()

		a := intSet(1, 2)
		defer a.Destroy()

		sym := SymmetricDifference(a, a)
		defer sym.Destroy()

		require.NotNil(t, sym)
		assert.True(t, sym.IsEmpty())
	})

	t.Run("releasing the intermediates disposes nothing", func(t *testing.T) {
		t.Parallel()

		disposed := 0

		a := New(compare.Ordered[int](), WithDispose(func(int) {
			disposed++
		}))
		defer a.Destroy()

		b := intSet(2, 3)
		defer b.Destroy()

		a.AddAll(1, 2)

		sym := SymmetricDifference(a, b)

		// The intermediates are torn down inside the call; the result still
		// owns its copies, so nothing may have been disposed yet.
		assert.Equal(t, 0, disposed)
		assert.Equal(t, []int{1, 3}, sym.Entries())

		// The result inherits a's dispose hook and disposes its own copies.
		sym.Destroy()
		assert.Equal(t, 2, disposed)
	})

	t.Run("nil operands", func(t *testing.T) {
		t.Parallel()

		a := intSet(1)
		defer a.Destroy()

		assert.Nil(t, SymmetricDifference(a, nil))
		assert.Nil(t, SymmetricDifference(nil, a))
	})
}
