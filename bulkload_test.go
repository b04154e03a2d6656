package bptree

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkLoadEmpty(t *testing.T) {
	t.Parallel()

	tree := New[int, string](4)
	tree.BulkLoad(nil)

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	require.NoError(t, tree.Validate())
}

func TestBulkLoadSingleEntry(t *testing.T) {
	t.Parallel()

	tree := New[int, string](4)
	tree.BulkLoad([]Entry[int, string]{{Key: 10, Value: "value10"}})

	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 1, tree.Height())

	val, err := tree.Get(10)
	require.NoError(t, err)
	assert.Equal(t, "value10", val)
	require.NoError(t, tree.Validate())
}

func TestBulkLoadUnsortedInput(t *testing.T) {
	t.Parallel()

	var entries []Entry[int, int]
	for _, k := range scrambled(1000) {
		entries = append(entries, Entry[int, int]{Key: k, Value: k * 2})
	}

	tree := New[int, int](8)
	tree.BulkLoad(entries)

	assert.Equal(t, 1000, tree.Len())
	require.NoError(t, tree.Validate())
	for i := 0; i < 1000; i++ {
		val, err := tree.Get(i)
		require.NoError(t, err)
		require.Equal(t, i*2, val)
	}
}

func TestBulkLoadDuplicatesLastWins(t *testing.T) {
	t.Parallel()

	tree := New[int, string](4)
	tree.BulkLoad([]Entry[int, string]{
		{Key: 1, Value: "a"},
		{Key: 1, Value: "b"},
	})

	assert.Equal(t, 1, tree.Len())
	val, err := tree.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", val)

	// Duplicates interleaved with other keys, several runs.
	tree.BulkLoad([]Entry[int, string]{
		{Key: 3, Value: "x1"},
		{Key: 2, Value: "y1"},
		{Key: 3, Value: "x2"},
		{Key: 5, Value: "z"},
		{Key: 2, Value: "y2"},
		{Key: 3, Value: "x3"},
	})
	assert.Equal(t, 3, tree.Len())
	for key, want := range map[int]string{3: "x3", 2: "y2", 5: "z"} {
		val, err := tree.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, val)
	}
	require.NoError(t, tree.Validate())
}

func TestBulkLoadReplacesContent(t *testing.T) {
	t.Parallel()

	tree := New[int, int](4)
	for i := 0; i < 100; i++ {
		tree.Set(i, i)
	}

	tree.BulkLoad([]Entry[int, int]{{Key: 500, Value: 500}})

	assert.Equal(t, 1, tree.Len())
	_, err := tree.Get(0)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	require.NoError(t, tree.Validate())
}

func TestBulkLoadSubRange(t *testing.T) {
	t.Parallel()

	entries := make([]Entry[int, int], 100)
	for i := range entries {
		entries[i] = Entry[int, int]{Key: i, Value: i}
	}

	// A slice expression is the half-open sub-range.
	tree := New[int, int](4)
	tree.BulkLoad(entries[20:50])

	assert.Equal(t, 30, tree.Len())
	_, err := tree.Get(19)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = tree.Get(50)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	val, err := tree.Get(35)
	require.NoError(t, err)
	assert.Equal(t, 35, val)
	require.NoError(t, tree.Validate())
}

func TestBulkLoadLeafOccupancy(t *testing.T) {
	t.Parallel()

	// Every size from 1 up must produce a tree the validator accepts; the
	// interesting cases are remainders that would leave the final leaf or
	// branch below minKeys without tail balancing.
	for _, order := range []int{3, 4, 5, 8} {
		for n := 1; n <= 120; n++ {
			entries := make([]Entry[int, int], n)
			for i := range entries {
				entries[i] = Entry[int, int]{Key: i, Value: i}
			}
			tree := New[int, int](order)
			tree.BulkLoad(entries)
			require.NoError(t, tree.Validate(), "order %d, %d entries", order, n)
			require.Equal(t, n, tree.Len())
		}
	}
}

func TestBulkLoadEquivalence(t *testing.T) {
	t.Parallel()

	// The same logical entries loaded in bulk and inserted one at a time
	// must contain identical pairs, though internal shapes may differ.
	var entries []Entry[int, string]
	for _, k := range scrambled(500) {
		entries = append(entries, Entry[int, string]{Key: k % 300, Value: fmt.Sprintf("v%d", k)})
	}

	bulk := New[int, string](8)
	bulk.BulkLoad(slices.Clone(entries))

	sequential := New[int, string](8)
	for _, e := range entries {
		sequential.Set(e.Key, e.Value)
	}

	require.NoError(t, bulk.Validate())
	require.NoError(t, sequential.Validate())
	require.Equal(t, sequential.Len(), bulk.Len())

	bc, sc := bulk.Cursor(), sequential.Cursor()
	for bc.Next() {
		require.True(t, sc.Next())
		require.Equal(t, sc.Key(), bc.Key())
		require.Equal(t, sc.Value(), bc.Value())
	}
	assert.False(t, sc.Next())
}

func TestBulkLoadIterationOrder(t *testing.T) {
	t.Parallel()

	var entries []Entry[int, int]
	for _, k := range scrambled(256) {
		entries = append(entries, Entry[int, int]{Key: k, Value: k})
	}

	tree := New[int, int](4)
	tree.BulkLoad(entries)

	c := tree.Cursor()
	want := 0
	for c.First(); c.Valid(); c.Next() {
		require.Equal(t, want, c.Key())
		want++
	}
	assert.Equal(t, 256, want)

	// Reverse over the freshly packed chain as well.
	for c.Last(); c.Valid(); c.Prev() {
		want--
		require.Equal(t, want, c.Key())
	}
	assert.Equal(t, 0, want)
}
