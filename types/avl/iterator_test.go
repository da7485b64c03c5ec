package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeIteration(t *testing.T) {
	t.Run("empty tree", func(t *testing.T) {
		tree := NewOrderedTree[int]()
		it := NewIterator(&tree)
		for it.Next() {
			t.Fatal("no cycle for empty tree")
		}
		require.False(t, it.Valid())
		require.Nil(t, it.Current())
	})

	t.Run("step iteration", func(t *testing.T) {
		tree := NewOrderedTree[int]()
		tree.Insert(2)
		tree.Insert(1)
		tree.Insert(3)
		it := NewIterator(&tree)
		require.False(t, it.Valid())
		require.True(t, it.Next())
		require.Equal(t, 1, it.Current().Key())
		require.True(t, it.Next())
		require.Equal(t, 2, it.Current().Key())
		require.True(t, it.Next())
		require.Equal(t, 3, it.Current().Key())
		require.False(t, it.Next())
		require.False(t, it.Valid())
		require.Nil(t, it.Current())
		// Exhausted iterators stay exhausted.
		require.False(t, it.Next())
	})

	t.Run("sorted iteration", func(t *testing.T) {
		testCases := []struct {
			insert []int
			want   []int
		}{
			{[]int{1}, []int{1}},
			{[]int{1, 2, 3}, []int{1, 2, 3}},
			{[]int{4, 3, 2, 1}, []int{1, 2, 3, 4}},
			{[]int{5, 1, 4, 2, 3}, []int{1, 2, 3, 4, 5}},
			{[]int{2, 1, 2, 3, 2}, []int{1, 2, 2, 2, 3}},
		}
		for _, tc := range testCases {
			tree := NewOrderedTree[int]()
			for _, key := range tc.insert {
				tree.Insert(key)
			}
			it := tree.Iterator()
			result := []int{}
			for it.Next() {
				result = append(result, it.Current().Key())
			}
			require.Equal(t, tc.want, result)
		}
	})

	t.Run("reset", func(t *testing.T) {
		tree := NewOrderedTree[int]()
		for _, key := range []int{3, 1, 4, 1, 5} {
			tree.Insert(key)
		}
		it := tree.Iterator()
		require.True(t, it.Next())
		require.True(t, it.Next())
		require.Equal(t, 1, it.Current().Key())

		it.Reset()
		require.False(t, it.Valid())
		result := []int{}
		for it.Next() {
			result = append(result, it.Current().Key())
		}
		require.Equal(t, []int{1, 1, 3, 4, 5}, result)
	})

	t.Run("reset after growth", func(t *testing.T) {
		tree := NewOrderedTree[int]()
		tree.Insert(2)
		it := tree.Iterator()
		require.True(t, it.Next())
		require.False(t, it.Next())

		tree.Insert(1)
		tree.Insert(3)
		it.Reset()
		result := []int{}
		for it.Next() {
			result = append(result, it.Current().Key())
		}
		require.Equal(t, []int{1, 2, 3}, result)
	})
}
