package initcenters

import (
	"testing"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/internal/rng"
	"github.com/stretchr/testify/require"
)

func sampleDataset() lvcluster.Dataset {
	return lvcluster.Dataset{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1},
	}
}

func TestUniformKEqualsN(t *testing.T) {
	ds := sampleDataset()
	pts := Uniform(ds, len(ds), rng.FromSeed(1))
	require.Len(t, pts, len(ds))
	for i := range ds {
		require.Equal(t, ds[i], pts[i])
	}
}

func TestUniformKZeroOrTooLarge(t *testing.T) {
	ds := sampleDataset()
	require.Nil(t, Uniform(ds, 0, nil))
	require.Nil(t, Uniform(ds, len(ds)+1, nil))
}

func TestUniformDistinct(t *testing.T) {
	ds := sampleDataset()
	pts := Uniform(ds, 3, rng.FromSeed(7))
	require.Len(t, pts, 3)
	seen := make(map[string]bool)
	for _, p := range pts {
		key := ""
		for _, v := range p {
			key += string(rune(int(v*1000) + 1))
		}
		require.False(t, seen[key])
		seen[key] = true
	}
}

func TestKMeansPPDeterministic(t *testing.T) {
	ds := sampleDataset()
	c1, err := KMeansPP(ds, 2, nil, rng.FromSeed(42))
	require.NoError(t, err)
	c2, err := KMeansPP(ds, 2, nil, rng.FromSeed(42))
	require.NoError(t, err)
	require.Equal(t, c1, c2)
	require.Len(t, c1, 2)
}

func TestKMeansPPPicksSpreadCenters(t *testing.T) {
	ds := sampleDataset()
	centers, err := KMeansPP(ds, 2, nil, rng.FromSeed(3))
	require.NoError(t, err)

	// The two chosen centers should come from different clusters (one
	// near the origin, one near (10,10)) since the max-D^2 rule always
	// picks the farthest remaining point from what's already chosen.
	sumA, sumB := 0.0, 0.0
	for _, v := range centers[0] {
		sumA += v
	}
	for _, v := range centers[1] {
		sumB += v
	}
	require.True(t, (sumA < 1 && sumB > 15) || (sumB < 1 && sumA > 15))
}

func TestKMeansPPErrors(t *testing.T) {
	_, err := KMeansPP(nil, 1, nil, nil)
	require.ErrorIs(t, err, ErrEmptyDataset)

	ds := sampleDataset()
	_, err = KMeansPP(ds, 0, nil, nil)
	require.ErrorIs(t, err, lvcluster.ErrInvalidK)

	_, err = KMeansPP(ds, len(ds)+1, nil, nil)
	require.ErrorIs(t, err, lvcluster.ErrInvalidK)
}
