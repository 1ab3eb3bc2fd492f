package biglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOnlyList_ForwardsReads(t *testing.T) {
	l := newInts(t, 10, WithMaxSegmentCapacity(4))
	r := l.AsReadOnly()

	assert.Equal(t, int64(10), r.Count())
	assert.Equal(t, l.Capacity(), r.Capacity())
	assert.Equal(t, l.Policy(), r.Policy())
	assert.Equal(t, 4, r.MaxSegmentCapacity())

	v, err := r.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	i, err := r.LastIndexOfRange(2, 9, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), i)

	i, err = r.FindLastIndexFrom(8, func(v int) bool { return v%3 == 0 })
	require.NoError(t, err)
	assert.Equal(t, int64(6), i)

	last, ok, err := r.FindLast(func(v int) bool { return v < 5 })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, last)

	i, err = r.BinarySearchRange(0, 5, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), i)

	sub, err := r.GetRange(8, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9}, items(t, sub))

	// Later changes through the list are visible.
	require.NoError(t, l.Add(10))
	assert.Equal(t, int64(11), r.Count())
	out, err := r.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, 10, out[10])
}

func TestReadOnlyList_RejectsWrites(t *testing.T) {
	l := newInts(t, 3)
	r := l.AsReadOnly()

	assert.ErrorIs(t, r.SetItem(0, 1), ErrReadOnly)
	assert.ErrorIs(t, r.InsertItem(0, 1), ErrReadOnly)
	assert.ErrorIs(t, r.RemoveItem(0), ErrReadOnly)
	assert.ErrorIs(t, r.ClearItems(), ErrInvalidState)

	c, err := NewCollectionWithStore[int](r)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Add(4), ErrReadOnly)
	assert.ErrorIs(t, c.Set(0, 4), ErrReadOnly)
	assert.ErrorIs(t, c.Clear(), ErrReadOnly)

	ok, err := c.Contains(2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, items(t, l))
}
