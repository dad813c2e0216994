package kmeans

import (
	"testing"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/initcenters"
	"github.com/katalvlaran/lvcluster/internal/rng"
	"github.com/stretchr/testify/require"
)

// Scenario A from the testable-properties set: a 1-D tri-modal dataset with
// well-separated clusters should converge to the exact partition and
// centers in one iteration.
func TestRunScenarioA(t *testing.T) {
	dataset := lvcluster.Dataset{
		{1.0}, {1.2}, {1.1},
		{3.0}, {3.2}, {3.1},
		{8.0}, {8.2}, {8.1},
	}
	initial := []lvcluster.Point{{1.0}, {3.0}, {8.0}}

	result, err := Run(dataset, initial, 0.001, 100)
	require.NoError(t, err)

	require.Equal(t, lvcluster.ClusterSet{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	}, result.Clusters)

	require.Len(t, result.Centers, 3)
	require.InDelta(t, 1.1, result.Centers[0][0], 1e-9)
	require.InDelta(t, 3.1, result.Centers[1][0], 1e-9)
	require.InDelta(t, 8.1, result.Centers[2][0], 1e-9)
	require.Empty(t, result.EmptyClusters)
}

func TestRunValidation(t *testing.T) {
	ds := lvcluster.Dataset{{0}, {1}}

	_, err := Run(nil, []lvcluster.Point{{0}}, 0.01, 10)
	require.ErrorIs(t, err, lvcluster.ErrEmptyDataset)

	_, err = Run(ds, nil, 0.01, 10)
	require.ErrorIs(t, err, lvcluster.ErrInvalidK)

	_, err = Run(ds, []lvcluster.Point{{0}, {1}, {2}}, 0.01, 10)
	require.ErrorIs(t, err, lvcluster.ErrInvalidK)

	_, err = Run(ds, []lvcluster.Point{{0, 0}}, 0.01, 10)
	require.ErrorIs(t, err, ErrCentersDimensionMismatch)

	_, err = Run(ds, []lvcluster.Point{{0}}, 0, 10)
	require.ErrorIs(t, err, lvcluster.ErrInvalidParameter)

	_, err = Run(ds, []lvcluster.Point{{0}}, 0.01, 0)
	require.ErrorIs(t, err, lvcluster.ErrInvalidParameter)
}

// Universal property 5: WCE is non-increasing across iterations and the
// loop terminates within iter-max. Re-running with successively larger
// iteration caps (same seed data, same deterministic loop) lets WCE at
// cap=i stand in for WCE after i iterations.
func TestRunWCEMonotone(t *testing.T) {
	dataset := lvcluster.Dataset{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
		{9, 9}, {10, 9}, {9, 10}, {10, 10},
	}
	initial := []lvcluster.Point{{0.5, 1.5}, {9.5, 8.5}}

	var lastWCE float64 = -1
	for iterCap := 1; iterCap <= 6; iterCap++ {
		result, err := Run(dataset, initial, 1e-12, iterCap)
		require.NoError(t, err)
		if lastWCE >= 0 {
			require.LessOrEqual(t, result.WCE, lastWCE+1e-9)
		}
		lastWCE = result.WCE
	}
}

// Property 6: re-running K-Means++ with the same RNG seed produces
// identical centers, and feeding those centers through Run is therefore
// reproducible end to end.
func TestRunWithKMeansPPDeterministic(t *testing.T) {
	dataset := lvcluster.Dataset{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1},
	}

	centersA, err := initcenters.KMeansPP(dataset, 2, nil, rng.FromSeed(99))
	require.NoError(t, err)
	centersB, err := initcenters.KMeansPP(dataset, 2, nil, rng.FromSeed(99))
	require.NoError(t, err)
	require.Equal(t, centersA, centersB)

	resultA, err := Run(dataset, centersA, 1e-6, 50)
	require.NoError(t, err)
	resultB, err := Run(dataset, centersB, 1e-6, 50)
	require.NoError(t, err)
	require.Equal(t, resultA.Clusters, resultB.Clusters)
	require.Equal(t, resultA.Centers, resultB.Centers)
}

func TestRunEmptyClusterKeepsPreviousCenter(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {1}, {2}}
	// Third center starts far away from every point and has no point
	// nearer to it than to center 0 or 1, so it should remain empty and
	// unchanged.
	initial := []lvcluster.Point{{0}, {2}, {100}}

	result, err := Run(dataset, initial, 1e-6, 10)
	require.NoError(t, err)
	require.Contains(t, result.EmptyClusters, 2)
	require.Equal(t, lvcluster.Point{100}, result.Centers[2])
}
