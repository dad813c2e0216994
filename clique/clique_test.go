package clique

import (
	"testing"

	"github.com/katalvlaran/lvcluster"
	"github.com/stretchr/testify/require"
)

func TestRunTwoDenseRegionsAndSparseNoise(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {0.5}, {1}, {1.5}, {8}, {8.5}, {9}}

	result, err := Run(dataset, 10, 2)
	require.NoError(t, err)
	require.Equal(t, lvcluster.ClusterSet{{0, 1, 2, 3}, {5, 6}}, result.Clusters)
	require.Equal(t, []int{4}, result.Noise)
}

func TestRunAllPointsOneCluster(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {0.1}, {0.2}, {0.3}}

	result, err := Run(dataset, 2, 2)
	require.NoError(t, err)
	require.Len(t, result.Clusters, 1)
	require.Empty(t, result.Noise)
}

func TestRunEveryBlockBelowThresholdIsAllNoise(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {5}, {9}}

	result, err := Run(dataset, 10, 2)
	require.NoError(t, err)
	require.Empty(t, result.Clusters)
	require.ElementsMatch(t, []int{0, 1, 2}, result.Noise)
}

func TestRunBlocksExposeCorners(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {9}}

	result, err := Run(dataset, 3, 1)
	require.NoError(t, err)
	require.Len(t, result.Blocks, 2)
	for _, b := range result.Blocks {
		require.Len(t, b.MinCorner, 1)
		require.Len(t, b.MaxCorner, 1)
		require.True(t, b.MaxCorner[0] > b.MinCorner[0])
	}
}

func TestRunValidation(t *testing.T) {
	_, err := Run(nil, 10, 2)
	require.ErrorIs(t, err, lvcluster.ErrEmptyDataset)

	_, err = Run(lvcluster.Dataset{{0}}, 0, 2)
	require.ErrorIs(t, err, ErrInvalidIntervals)

	_, err = Run(lvcluster.Dataset{{0}}, 10, 0)
	require.ErrorIs(t, err, ErrInvalidThreshold)
}
