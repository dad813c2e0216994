package elbow

import (
	"testing"

	"github.com/katalvlaran/lvcluster"
	"github.com/stretchr/testify/require"
)

func TestChordDistancesPicksSteepestBend(t *testing.T) {
	ks := []int{1, 2, 3, 4, 5}
	wce := []float64{100, 40, 35, 32, 30}

	distances, bestIdx := chordDistances(ks, wce)
	require.Len(t, distances, 5)
	require.InDelta(t, 0, distances[0], 1e-9)
	require.InDelta(t, 0, distances[4], 1e-9)
	require.InDelta(t, 170.0/70.1141427, distances[1], 1e-5)
	require.InDelta(t, 120.0/70.1141427, distances[2], 1e-5)
	require.InDelta(t, 62.0/70.1141427, distances[3], 1e-5)
	require.Equal(t, 1, bestIdx) // ks[1] = 2 is the elbow
}

func TestChordDistancesDegenerateFlatLine(t *testing.T) {
	ks := []int{1, 2, 3}
	wce := []float64{10, 10, 10}

	distances, bestIdx := chordDistances(ks, wce)
	for _, d := range distances {
		require.InDelta(t, 0, d, 1e-9)
	}
	require.Equal(t, 0, bestIdx) // first point wins ties (d > bestDist is strict)
}

func TestRunProducesOneWCEPerK(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {1}, {2}, {10}, {11}, {12}}

	result, err := Run(dataset, 1, 4, 1e-6, 100, nil)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, result.Ks)
	require.Len(t, result.WCE, 4)
	require.Len(t, result.Distances, 4)
	require.GreaterOrEqual(t, result.BestK, 1)
	require.LessOrEqual(t, result.BestK, 4)

	// WCE must be non-increasing as k grows for a fixed dataset: more
	// centers can only reduce or match total squared error.
	for i := 1; i < len(result.WCE); i++ {
		require.LessOrEqual(t, result.WCE[i], result.WCE[i-1]+1e-9)
	}
}

func TestRunValidation(t *testing.T) {
	valid := lvcluster.Dataset{{0}, {1}, {2}}

	_, err := Run(lvcluster.Dataset{}, 1, 2, 1e-6, 10, nil)
	require.ErrorIs(t, err, lvcluster.ErrEmptyDataset)

	_, err = Run(valid, 0, 2, 1e-6, 10, nil)
	require.ErrorIs(t, err, ErrInvalidKRange)

	_, err = Run(valid, 2, 2, 1e-6, 10, nil)
	require.ErrorIs(t, err, ErrInvalidKRange)

	_, err = Run(valid, 1, 5, 1e-6, 10, nil)
	require.ErrorIs(t, err, ErrInvalidKRange)
}
