package cset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcfalls/CSet/compare"
	"github.com/dmcfalls/CSet/pointer"
	"github.com/dmcfalls/CSet/sortable"
)

// TestMethodOrderedElements tests sets over element types that carry
// their own ordering methods, adapted through sortable.Compare.
func TestMethodOrderedElements(t *testing.T) {
	t.Parallel()

	t.Run("ints", func(t *testing.T) {
		t.Parallel()

		s := New(sortable.Compare[sortable.Int]())
		defer s.Destroy()

		s.AddAll(9, 1, 4, 1)

		assert.Equal(t, []sortable.Int{1, 4, 9}, s.Entries())
		assert.True(t, s.Contains(4))
	})

	t.Run("strings", func(t *testing.T) {
		t.Parallel()

		s := New(sortable.Compare[sortable.String]())
		defer s.Destroy()

		s.AddAll("pear", "apple", "plum")

		assert.Equal(t, []sortable.String{"apple", "pear", "plum"}, s.Entries())
	})

	t.Run("bytes", func(t *testing.T) {
		t.Parallel()

		s := New(sortable.Compare[sortable.Byte]())
		defer s.Destroy()

		s.AddAll(0xFE, 0x10, 0x7F)

		assert.Equal(t, []sortable.Byte{0x10, 0x7F, 0xFE}, s.Entries())
	})
}

// TestPointerElements tests that a set of pointers copies the pointers
// while leaving the pointees shared with the caller.
func TestPointerElements(t *testing.T) {
	t.Parallel()

	byPointee := compare.FromLess(func(a, b *int) bool { return *a < *b })

	s := New(byPointee, WithCapacity[*int](4))
	defer s.Destroy()

	two := pointer.To(2)
	require.True(t, s.Add(two))
	require.True(t, s.Add(pointer.To(7)))
	require.True(t, s.Add(pointer.To(5)))

	entries := s.Entries()
	require.Len(t, entries, 3)

	first, ok := pointer.Value(entries[0])
	require.True(t, ok)
	assert.Equal(t, 2, first)

	// Writes through the caller's pointer are visible inside the set.
	*two = 3

	assert.True(t, s.Contains(two))

	got, ok := pointer.Value(s.Entries()[0])
	require.True(t, ok)
	assert.Equal(t, 3, got)
}
