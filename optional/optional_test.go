package optional

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := Some(42)
	assert.True(t, opt.NonEmpty())
	assert.False(t, opt.Empty())

	val, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := None[int]()
	assert.False(t, opt.NonEmpty())
	assert.True(t, opt.Empty())

	val, ok := opt.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val) // zero value
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	t.Run("Some", func(t *testing.T) {
		t.Parallel()

		opt := Some(42)
		assert.Equal(t, 42, opt.GetOrPanic())
	})

	t.Run("None", func(t *testing.T) {
		t.Parallel()

		opt := None[int]()

		assert.Panics(t, func() {
			opt.GetOrPanic()
		})
	})
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	some := Some("{1, 2, 3}")
	assert.Equal(t, "{1, 2, 3}", some.GetOrElse("unformattable"))

	none := None[string]()
	assert.Equal(t, "unformattable", none.GetOrElse("unformattable"))
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	some := Some(1)
	other := Some(2)

	assert.Equal(t, some, some.OrElse(other))
	assert.Equal(t, other, None[int]().OrElse(other))
	assert.True(t, None[int]().OrElse(None[int]()).Empty())
}

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("Some yields exactly once", func(t *testing.T) {
		t.Parallel()

		var seen []int
		for v := range Some(7).All() {
			seen = append(seen, v)
		}

		assert.Equal(t, []int{7}, seen)
	})

	t.Run("None yields nothing", func(t *testing.T) {
		t.Parallel()

		count := 0
		for range None[int]().All() {
			count++
		}

		assert.Zero(t, count)
	})
}

func TestForEach(t *testing.T) {
	t.Parallel()

	visited := 0
	Some(3).ForEach(func(v int) {
		visited += v
	})
	None[int]().ForEach(func(v int) {
		visited += v
	})

	assert.Equal(t, 3, visited)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, Some(1).Equals(Some(1), eq))
	assert.False(t, Some(1).Equals(Some(2), eq))
	assert.False(t, Some(1).Equals(None[int](), eq))
	assert.False(t, None[int]().Equals(Some(1), eq))
	assert.True(t, None[int]().Equals(None[int](), eq))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(42)", Some(42).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("Some maps the value", func(t *testing.T) {
		t.Parallel()

		upper := Map(Some("abc"), strings.ToUpper)

		val, ok := upper.Get()
		require.True(t, ok)
		assert.Equal(t, "ABC", val)
	})

	t.Run("None stays empty across type change", func(t *testing.T) {
		t.Parallel()

		mapped := Map(None[string](), func(s string) int { return len(s) })

		assert.True(t, mapped.Empty())
	})
}
