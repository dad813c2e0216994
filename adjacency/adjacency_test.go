package adjacency

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCollectionBasics(t *testing.T, c Collection) {
	require.NoError(t, c.Set(0, 1))
	require.NoError(t, c.Set(0, 2))
	require.True(t, c.Has(0, 1))
	require.False(t, c.Has(1, 0))
	require.False(t, c.Has(0, 3))

	nbrs := c.Neighbors(0)
	sort.Ints(nbrs)
	require.Equal(t, []int{1, 2}, nbrs)
	require.Equal(t, 2, c.Degree(0))

	require.NoError(t, c.Erase(0, 1))
	require.False(t, c.Has(0, 1))
	require.Equal(t, 1, c.Degree(0))

	require.ErrorIs(t, c.Set(-1, 0), ErrIndexOutOfRange)
	require.ErrorIs(t, c.Set(0, 100), ErrIndexOutOfRange)
	require.False(t, c.Has(-1, 0))
	require.Nil(t, c.Neighbors(-1))
}

func TestBitMatrix(t *testing.T) {
	c, err := NewBitMatrix(5)
	require.NoError(t, err)
	testCollectionBasics(t, c)

	_, err = NewBitMatrix(0)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestBitMatrixManyBitsAcrossWords(t *testing.T) {
	c, err := NewBitMatrix(200)
	require.NoError(t, err)
	for j := 0; j < 200; j += 7 {
		require.NoError(t, c.Set(0, j))
	}
	nbrs := c.Neighbors(0)
	require.Len(t, nbrs, 29) // j = 0, 7, ..., 196
	require.Equal(t, c.Degree(0), len(nbrs))
}

func TestDenseMatrix(t *testing.T) {
	c, err := NewDenseMatrix(5)
	require.NoError(t, err)
	testCollectionBasics(t, c)

	dm, err := NewDenseMatrix(3)
	require.NoError(t, err)
	require.NoError(t, dm.SetWeight(0, 1, 3.5))
	require.Equal(t, 3.5, dm.Weight(0, 1))
	require.True(t, dm.Has(0, 1))
}

func TestList(t *testing.T) {
	c, err := NewList(5)
	require.NoError(t, err)
	testCollectionBasics(t, c)

	_, err = NewList(-1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestSetSymmetric(t *testing.T) {
	c, _ := NewList(4)
	require.NoError(t, SetSymmetric(c, 0, 1))
	require.True(t, c.Has(0, 1))
	require.True(t, c.Has(1, 0))

	require.NoError(t, EraseSymmetric(c, 0, 1))
	require.False(t, c.Has(0, 1))
	require.False(t, c.Has(1, 0))
}
