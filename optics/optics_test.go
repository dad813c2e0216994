package optics

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/dbscan"
	"github.com/stretchr/testify/require"
)

func TestRunProducesFullOrdering(t *testing.T) {
	dataset := lvcluster.Dataset{{1}, {2}, {3}, {10}, {11}, {12}}

	result, err := Run(dataset, 1.5, 2)
	require.NoError(t, err)
	require.Len(t, result.Ordering, len(dataset))

	seen := make(map[int]bool)
	for _, e := range result.Ordering {
		seen[e.Index] = true
	}
	require.Len(t, seen, len(dataset))
}

func TestRunFirstPointHasUndefinedReachability(t *testing.T) {
	dataset := lvcluster.Dataset{{1}, {2}, {3}, {10}, {11}, {12}}

	result, err := Run(dataset, 1.5, 2)
	require.NoError(t, err)
	require.True(t, math.IsInf(result.Ordering[0].Reachability, 1))
}

// TestExtractClustersMatchesDBSCAN verifies spec property 10: DBSCAN(eps,
// minPts) and ExtractClusters(OPTICS(eps, minPts), eps) agree.
func TestExtractClustersMatchesDBSCAN(t *testing.T) {
	dataset := lvcluster.Dataset{{1}, {2}, {3}, {10}, {11}, {12}}

	dbResult, err := dbscan.Run(dataset, 1.5, 2)
	require.NoError(t, err)

	opResult, err := Run(dataset, 1.5, 2)
	require.NoError(t, err)
	clusters, noise := ExtractClusters(opResult.Ordering, 1.5)

	require.Equal(t, normalize(dbResult.Clusters), normalize(clusters))
	require.ElementsMatch(t, dbResult.Noise, noise)
}

func normalize(cs lvcluster.ClusterSet) lvcluster.ClusterSet {
	out := make(lvcluster.ClusterSet, len(cs))
	for i, c := range cs {
		sorted := append(lvcluster.Cluster(nil), c...)
		sort.Ints(sorted)
		out[i] = sorted
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

func TestRunValidation(t *testing.T) {
	_, err := Run(nil, 1.5, 2)
	require.ErrorIs(t, err, lvcluster.ErrEmptyDataset)

	_, err = Run(lvcluster.Dataset{{0}}, 0, 2)
	require.ErrorIs(t, err, ErrInvalidEps)

	_, err = Run(lvcluster.Dataset{{0}}, 1.5, 0)
	require.ErrorIs(t, err, ErrInvalidMinPts)
}

func TestAutoRadiusFindsTargetClusterCount(t *testing.T) {
	// A synthetic reachability plot with two clean peaks (50, 60) against
	// a baseline of 1s, plus the mandatory +Inf at the very first point.
	ordering := []OrderEntry{
		{Index: 0, Reachability: math.Inf(1)},
		{Index: 1, Reachability: 1},
		{Index: 2, Reachability: 50},
		{Index: 3, Reachability: 1},
		{Index: 4, Reachability: 1},
		{Index: 5, Reachability: 60},
		{Index: 6, Reachability: 1},
	}

	eps, achieved, err := AutoRadius(ordering, 3, 100, 100)
	require.NoError(t, err)
	require.Equal(t, 3, achieved)
	require.InDelta(t, 25, eps, 1e-9)
}

func TestLocalMaximaCountThresholds(t *testing.T) {
	ordering := []OrderEntry{
		{Index: 0, Reachability: math.Inf(1)},
		{Index: 1, Reachability: 1},
		{Index: 2, Reachability: 50},
		{Index: 3, Reachability: 1},
		{Index: 4, Reachability: 1},
		{Index: 5, Reachability: 60},
		{Index: 6, Reachability: 1},
	}

	require.Equal(t, 2, localMaximaCount(ordering, 55))
	require.Equal(t, 3, localMaximaCount(ordering, 45))
	require.Equal(t, 1, localMaximaCount(ordering, 70))
}

func TestAutoRadiusValidation(t *testing.T) {
	_, _, err := AutoRadius(nil, 0, 10, 10)
	require.ErrorIs(t, err, ErrInvalidTargetClusters)

	_, _, err = AutoRadius(nil, 2, 0, 10)
	require.ErrorIs(t, err, ErrInvalidEps)
}
