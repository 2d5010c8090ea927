package assert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmcfalls/CSet/assert"
	cseterrors "github.com/dmcfalls/CSet/errors"
)

func TestType(t *testing.T) {
	t.Parallel()

	t.Run("recovers the concrete type", func(t *testing.T) {
		t.Parallel()

		var boxed any = "hello"

		result, err := assert.Type[string](boxed)
		require.NoError(t, err)
		require.Equal(t, "hello", result)
	})

	t.Run("recovers a pointer type", func(t *testing.T) {
		t.Parallel()

		val := 42

		result, err := assert.Type[*int](any(&val))
		require.NoError(t, err)
		require.Equal(t, 42, *result)
	})

	t.Run("mismatch returns ErrWrongType and the zero value", func(t *testing.T) {
		t.Parallel()

		result, err := assert.Type[int]("not an int")
		require.Error(t, err)
		require.ErrorIs(t, err, cseterrors.ErrWrongType)
		require.Contains(t, err.Error(), "expected type int, but received string")
		require.Equal(t, 0, result)
	})

	t.Run("named types do not match their underlying type", func(t *testing.T) {
		t.Parallel()

		type label string

		_, err := assert.Type[string](label("x"))
		require.Error(t, err)
		require.ErrorIs(t, err, cseterrors.ErrWrongType)
	})

	t.Run("interface target accepts anything", func(t *testing.T) {
		t.Parallel()

		result, err := assert.Type[any](3.14)
		require.NoError(t, err)
		require.InDelta(t, 3.14, result, 0.0001)
	})
}

func TestTrue(t *testing.T) {
	t.Parallel()

	t.Run("does not panic when value is true", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			assert.True(true)
		})
	})

	t.Run("panics with default message when value is false", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed", func() {
			assert.True(false)
		})
	})

	t.Run("panics with formatted message when value is false", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "capacity hint -1 is negative", func() {
			assert.True(false, "capacity hint %d is negative", -1)
		})
	})

	t.Run("panics with args when first arg is not a string", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed: [42 boom]", func() {
			assert.True(false, 42, "boom")
		})
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	t.Run("does not panic when value is false", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			assert.False(false)
		})
	})

	t.Run("panics when value is true", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "expected false", func() {
			assert.False(true, "expected %s", "false")
		})
	})
}

func TestNil(t *testing.T) {
	t.Parallel()

	t.Run("does not panic when value is nil", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			assert.Nil(nil)
		})
	})

	t.Run("panics when value is not nil", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed", func() {
			assert.Nil("not nil")
		})
	})

	t.Run("typed nil pointer boxed as any is not nil", func(t *testing.T) {
		t.Parallel()

		var ptr *int

		require.PanicsWithValue(t, "assertion failed", func() {
			assert.Nil(ptr)
		})
	})
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	t.Run("does not panic when value is present", func(t *testing.T) {
		t.Parallel()

		val := 42

		require.NotPanics(t, func() {
			assert.NotNil(&val)
		})
	})

	t.Run("panics when value is nil", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "ordering function is required", func() {
			assert.NotNil(nil, "ordering function is required")
		})
	})
}

func TestNonEmptySlice(t *testing.T) {
	t.Parallel()

	t.Run("does not panic for a populated slice", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			assert.NonEmptySlice([]int{1, 2, 3})
		})
	})

	t.Run("panics for an empty slice", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "at least one choice is required", func() {
			assert.NonEmptySlice([]string{}, "at least one choice is required")
		})
	})

	t.Run("panics for a nil slice", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed", func() {
			assert.NonEmptySlice[string](nil)
		})
	})
}
