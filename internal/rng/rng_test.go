package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromSeedDeterministic(t *testing.T) {
	a := FromSeed(42)
	b := FromSeed(42)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestOrNilFallsBackToDefault(t *testing.T) {
	a := Or(nil)
	b := FromSeed(0)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestDeriveIndependentStreams(t *testing.T) {
	base := FromSeed(7)
	s1 := Derive(base, 0)
	s2 := Derive(base, 1)
	require.NotEqual(t, s1.Int63(), s2.Int63())
}

func TestPermRangeIsPermutation(t *testing.T) {
	p := PermRange(10, FromSeed(1))
	seen := make(map[int]bool)
	for _, v := range p {
		require.False(t, seen[v])
		seen[v] = true
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
	require.Len(t, seen, 10)
}

func TestSampleDistinctBounds(t *testing.T) {
	require.Nil(t, SampleDistinct(5, 0, nil))
	require.Nil(t, SampleDistinct(5, 6, nil))
	s := SampleDistinct(5, 5, FromSeed(3))
	require.Len(t, s, 5)
}
