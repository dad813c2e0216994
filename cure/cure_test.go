package cure

import (
	"testing"

	"github.com/katalvlaran/lvcluster"
	"github.com/stretchr/testify/require"
)

func TestRunTwoWellSeparatedGroups(t *testing.T) {
	// Intra-group spacing (<=2.5) is small next to the ~97-unit gap between
	// groups, so both merges that cross the gap always lose to any
	// intra-group pair; the final partition is forced regardless of the
	// order singleton merges happen in.
	dataset := lvcluster.Dataset{{0}, {1}, {2.5}, {100}, {101.2}, {103}}

	result, err := Run(dataset, 2, 2, 0)
	require.NoError(t, err)
	require.ElementsMatch(t, result.Clusters, lvcluster.ClusterSet{{0, 1, 2}, {3, 4, 5}})
	require.Len(t, result.Representatives, 2)
	for _, reps := range result.Representatives {
		require.Len(t, reps, 2) // 3 members > r=2, so each cluster keeps exactly r reps
	}
}

func TestRunFullShrinkCollapsesRepresentativeToMean(t *testing.T) {
	// alpha=1 shrinks every chosen representative all the way to the
	// cluster mean, so with r=1 the sole surviving representative must
	// equal the arithmetic mean of the cluster's members exactly,
	// independent of which point farthest-first selection happened to pick.
	dataset := lvcluster.Dataset{{0}, {2}, {4}, {10}, {12}, {14}}

	result, err := Run(dataset, 2, 1, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, result.Clusters, lvcluster.ClusterSet{{0, 1, 2}, {3, 4, 5}})

	means := make(map[float64]bool)
	for _, reps := range result.Representatives {
		require.Len(t, reps, 1)
		means[reps[0][0]] = true
	}
	require.True(t, means[2.0])
	require.True(t, means[12.0])
}

func TestRunFewerPointsThanRKeepsAllAsRepresentatives(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {1}, {50}, {51}}

	result, err := Run(dataset, 2, 5, 0.5)
	require.NoError(t, err)
	require.ElementsMatch(t, result.Clusters, lvcluster.ClusterSet{{0, 1}, {2, 3}})
	for _, reps := range result.Representatives {
		require.Len(t, reps, 2) // cluster size (2) <= r (5): every member is kept
	}
}

func TestRunSingleClusterWhenKEqualsOne(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {1}, {2}}

	result, err := Run(dataset, 1, 2, 0)
	require.NoError(t, err)
	require.Len(t, result.Clusters, 1)
	require.ElementsMatch(t, result.Clusters[0], []int{0, 1, 2})
}

func TestRunScenarioEOnDBSCANData(t *testing.T) {
	// Same six-point, two-blob dataset as the DBSCAN/K-Medoids end-to-end
	// scenarios, run through CURE with k=2, r=1, shrink=0.5. The ~7-unit
	// cross-blob gap against an intra-blob spacing of 1 makes every
	// within-blob merge strictly cheaper than any cross-blob merge
	// regardless of tie-break order among equal-distance pairs, so the
	// final partition is forced to {0,1,2}, {3,4,5}; each cluster's
	// member mean (computed directly from the known membership, not from
	// the shrunk representative, whose exact value depends on farthest-
	// first tie-breaking) lands at the blob centers 2.0 and 11.0 exactly.
	dataset := lvcluster.Dataset{{1}, {2}, {3}, {10}, {11}, {12}}

	result, err := Run(dataset, 2, 1, 0.5)
	require.NoError(t, err)
	require.ElementsMatch(t, result.Clusters, lvcluster.ClusterSet{{0, 1, 2}, {3, 4, 5}})

	means := make(map[float64]bool)
	for _, cluster := range result.Clusters {
		var sum float64
		for _, idx := range cluster {
			sum += dataset[idx][0]
		}
		means[sum/float64(len(cluster))] = true
	}
	require.True(t, means[2.0])
	require.True(t, means[11.0])
}

func TestRunValidation(t *testing.T) {
	valid := lvcluster.Dataset{{0}, {1}, {2}}

	_, err := Run(lvcluster.Dataset{}, 1, 2, 0)
	require.ErrorIs(t, err, lvcluster.ErrEmptyDataset)

	_, err = Run(valid, 0, 2, 0)
	require.ErrorIs(t, err, lvcluster.ErrInvalidK)

	_, err = Run(valid, 5, 2, 0)
	require.ErrorIs(t, err, lvcluster.ErrInvalidK)

	_, err = Run(valid, 1, 0, 0)
	require.ErrorIs(t, err, ErrInvalidRepresentatives)

	_, err = Run(valid, 1, 2, -0.1)
	require.ErrorIs(t, err, ErrInvalidShrink)

	_, err = Run(valid, 1, 2, 1.1)
	require.ErrorIs(t, err, ErrInvalidShrink)
}
