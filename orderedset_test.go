package setlike_test

import (
	"testing"

	"github.com/emallson/setlike"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := setlike.NewOrderedSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		removed, err := s.Remove("bar")
		require.NoError(t, err)
		assert.True(t, removed)

		assert.Equal(t, []string{"foo", "baz", "123"}, s.Items())
	})

	t.Run("remove existing item from the beginning", func(t *testing.T) {
		s := setlike.NewOrderedSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		removed, err := s.Remove("foo")
		require.NoError(t, err)
		assert.True(t, removed)

		assert.Equal(t, []string{"bar", "baz", "123"}, s.Items())

		assert.False(t, s.Has("foo"))
		assert.True(t, s.Has("123"))
		assert.True(t, s.Has("bar"))
		assert.True(t, s.Has("baz"))
	})

	t.Run("remove existing item from the end", func(t *testing.T) {
		s := setlike.NewOrderedSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		removed, err := s.Remove("123")
		require.NoError(t, err)
		assert.True(t, removed)

		assert.False(t, s.Has("123"))
		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
	})
}

func TestOrderedSet_InsertionOrder(t *testing.T) {
	t.Run("re-insert keeps the original position", func(t *testing.T) {
		s := setlike.NewOrderedSet[int]()
		s.Insert(3)
		s.Insert(9)
		s.Insert(1)

		assert.False(t, s.Insert(3))

		assert.Equal(t, []int{3, 9, 1}, s.Items())
	})
}

func TestOrderedSet_InsertSlice(t *testing.T) {
	t.Run("set and slice with single elements", func(t *testing.T) {
		s := setlike.NewOrderedSet[int]()
		s.Insert(3)

		assert.True(t, s.InsertSlice([]int{9}))

		n, err := s.Len()
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.True(t, s.Has(3))
		assert.True(t, s.Has(9))
		assert.False(t, s.Has(1))

		assert.Equal(t, []int{3, 9}, s.Items())
	})
}

func TestOrderedSet_WithCapacity(t *testing.T) {
	s := setlike.NewOrderedSetWithCapacity[string](16)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	s.Insert("foo")
	s.Insert("bar")
	assert.Equal(t, []string{"foo", "bar"}, s.Items())
}
