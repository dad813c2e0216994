package fcm

import (
	"testing"

	"github.com/katalvlaran/lvcluster"
	"github.com/stretchr/testify/require"
)

func TestRunRowsSumToOne(t *testing.T) {
	dataset := lvcluster.Dataset{
		{1.0}, {1.2}, {1.1},
		{8.0}, {8.2}, {8.1},
	}
	initial := []lvcluster.Point{{1.0}, {8.0}}

	result, err := Run(dataset, initial, 2, 1e-6, 100)
	require.NoError(t, err)

	for _, row := range result.Membership {
		var sum float64
		for _, u := range row {
			require.GreaterOrEqual(t, u, 0.0)
			require.LessOrEqual(t, u, 1.0)
			sum += u
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestRunHardLabelsMatchWellSeparatedClusters(t *testing.T) {
	dataset := lvcluster.Dataset{
		{1.0}, {1.2}, {1.1},
		{8.0}, {8.2}, {8.1},
	}
	initial := []lvcluster.Point{{1.0}, {8.0}}

	result, err := Run(dataset, initial, 2, 1e-6, 100)
	require.NoError(t, err)

	labels := result.Membership.HardLabels()
	require.Equal(t, labels[0], labels[1])
	require.Equal(t, labels[1], labels[2])
	require.Equal(t, labels[3], labels[4])
	require.Equal(t, labels[4], labels[5])
	require.NotEqual(t, labels[0], labels[3])
}

func TestRunCoincidentPointRule(t *testing.T) {
	dataset := lvcluster.Dataset{{1.0}, {5.0}}
	initial := []lvcluster.Point{{1.0}, {5.0}}

	result, err := Run(dataset, initial, 2, 1e-9, 10)
	require.NoError(t, err)

	require.InDelta(t, 1.0, result.Membership[0][0], 1e-9)
	require.InDelta(t, 0.0, result.Membership[0][1], 1e-9)
	require.InDelta(t, 1.0, result.Membership[1][1], 1e-9)
}

func TestRunValidation(t *testing.T) {
	ds := lvcluster.Dataset{{0}, {1}}

	_, err := Run(nil, []lvcluster.Point{{0}}, 2, 0.01, 10)
	require.ErrorIs(t, err, lvcluster.ErrEmptyDataset)

	_, err = Run(ds, []lvcluster.Point{{0}, {1}, {2}}, 2, 0.01, 10)
	require.ErrorIs(t, err, lvcluster.ErrInvalidK)

	_, err = Run(ds, []lvcluster.Point{{0, 0}}, 2, 0.01, 10)
	require.ErrorIs(t, err, ErrCentersDimensionMismatch)

	_, err = Run(ds, []lvcluster.Point{{0}}, 1, 0.01, 10)
	require.ErrorIs(t, err, ErrInvalidFuzzifier)

	_, err = Run(ds, []lvcluster.Point{{0}}, 2, 0, 10)
	require.ErrorIs(t, err, lvcluster.ErrInvalidParameter)
}
