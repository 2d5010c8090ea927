package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// account implements Comparable with multi-field equality.
type account struct {
	ID   int
	Name string
}

func (a account) Equals(other account) bool {
	return a.ID == other.ID && a.Name == other.Name
}

func TestComparable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        account
		b        account
		expected bool
	}{
		{
			name:     "equal values",
			a:        account{ID: 1, Name: "alpha"},
			b:        account{ID: 1, Name: "alpha"},
			expected: true,
		},
		{
			name:     "different IDs",
			a:        account{ID: 1, Name: "alpha"},
			b:        account{ID: 2, Name: "alpha"},
			expected: false,
		},
		{
			name:     "different names",
			a:        account{ID: 1, Name: "alpha"},
			b:        account{ID: 1, Name: "beta"},
			expected: false,
		},
		{
			name:     "zero values",
			a:        account{},
			b:        account{},
			expected: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.a.Equals(testCase.b))
		})
	}
}

func TestEqualsFunction(t *testing.T) {
	t.Parallel()

	a := account{ID: 1, Name: "alpha"}
	b := account{ID: 1, Name: "alpha"}
	c := account{ID: 2, Name: "beta"}

	assert.True(t, Equals(a, b))
	assert.False(t, Equals(a, c))
}
