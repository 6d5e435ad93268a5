package collection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type score int

type tagged struct {
	Tags any
}

func TestDefaultCompare(t *testing.T) {
	shared := []int{1, 2}

	tests := []struct {
		name     string
		a, b     any
		expected int
	}{
		{"equal ints", 4, 4, 0},
		{"smaller int", 1, 4, -1},
		{"larger int", 4, 1, 1},
		{"int and float equal", 2, 2.0, 0},
		{"int and float", 2, 2.5, -1},
		{"float and int", 2.5, 2, 1},
		{"unsigned", uint8(3), uint(9), -1},
		{"mixed sign kinds", uint(3), int64(-1), 1},
		{"named numeric", score(5), 3, 1},
		{"strings", "apple", "banana", -1},
		{"strings reversed", "banana", "apple", 1},
		{"equal strings", "go", "go", 0},
		{"string vs number", "1", 1, -1},
		{"number vs string", 1, "1", -1},
		{"bools", true, false, -1},
		{"nil pair", nil, nil, 0},
		{"nil vs value", nil, 1, -1},
		{"value vs nil", 1, nil, -1},
		{"equal slices", shared, []int{1, 2}, 0},
		{"different slices", []int{1}, []int{2}, -1},
		{"equal maps", map[string]int{"a": 1}, map[string]int{"a": 1}, 0},
		{"struct with slice in interface field", tagged{[]string{"a"}}, tagged{[]string{"a"}}, 0},
		{"struct with different slices", tagged{[]string{"a"}}, tagged{[]string{"b"}}, -1},
		{"struct with map in interface field", tagged{map[string]int{"a": 1}}, tagged{map[string]int{"a": 1}}, 0},
		{"struct with comparable interface field", tagged{"x"}, tagged{"x"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, DefaultCompare(tt.a, tt.b))
		})
	}
}

func TestDefaultCompare_MixedTypesAreAsymmetric(t *testing.T) {
	// Both directions report "less than"; this is the documented fallback.
	require.Equal(t, -1, DefaultCompare("a", 1))
	require.Equal(t, -1, DefaultCompare(1, "a"))
}

func TestCollection_CompareUsesDefault(t *testing.T) {
	c := New([]any{1, "two", 3.0})

	require.Equal(t, 0, c.IndexOf(1.0))
	require.Equal(t, 1, c.IndexOf("two"))
	require.Equal(t, 2, c.IndexOf(3))
	require.False(t, c.Contains("3"))
}

func TestCollection_LookupWithUncomparableFieldValues(t *testing.T) {
	c := New([]tagged{{[]string{"a"}}, {[]string{"b"}}, {[]string{"a"}}})

	require.True(t, c.Contains(tagged{[]string{"b"}}))
	require.Equal(t, 1, c.IndexOf(tagged{[]string{"b"}}))
	require.Equal(t, 2, c.Unique(nil).Count())

	removed, err := c.Remove(tagged{[]string{"a"}})
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, 2, c.Count())
}
