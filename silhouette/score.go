package silhouette

import (
	"math"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/metric"
)

// labelsFor converts clusters into a per-point cluster-index slice,
// validating that every index in [0, n) is covered exactly once.
func labelsFor(clusters lvcluster.ClusterSet, n int) ([]int, error) {
	if len(clusters) < 2 {
		return nil, ErrTooFewClusters
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	for ci, cluster := range clusters {
		for _, idx := range cluster {
			if idx < 0 || idx >= n {
				return nil, lvcluster.ErrIndexOutOfRange
			}
			if labels[idx] != -1 {
				return nil, ErrIncompleteAssignment
			}
			labels[idx] = ci
		}
	}
	for _, l := range labels {
		if l == -1 {
			return nil, ErrIncompleteAssignment
		}
	}

	return labels, nil
}

// Score computes the per-point silhouette coefficient for dataset under
// clusters, using m as the distance function.
//
// Returns lvcluster.ErrEmptyDataset, ErrTooFewClusters, or
// ErrIncompleteAssignment.
func Score(dataset lvcluster.Dataset, clusters lvcluster.ClusterSet, m metric.Metric) ([]float64, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	labels, err := labelsFor(clusters, len(dataset))
	if err != nil {
		return nil, err
	}

	dist := func(i, j int) (float64, error) { return m(dataset[i], dataset[j]) }

	return scoreWithDist(clusters, labels, dist)
}

// ScoreDistanceMatrix computes the per-point silhouette coefficient from a
// precomputed distance matrix instead of points and a metric.
//
// Returns lvcluster.ErrMalformedDistanceMatrix, ErrTooFewClusters, or
// ErrIncompleteAssignment.
func ScoreDistanceMatrix(dm lvcluster.DistanceMatrix, clusters lvcluster.ClusterSet) ([]float64, error) {
	if err := lvcluster.ValidateDistanceMatrix(dm, 1e-9); err != nil {
		return nil, err
	}
	labels, err := labelsFor(clusters, dm.Size())
	if err != nil {
		return nil, err
	}

	dist := func(i, j int) (float64, error) { return dm[i][j], nil }

	return scoreWithDist(clusters, labels, dist)
}

func scoreWithDist(clusters lvcluster.ClusterSet, labels []int, dist func(i, j int) (float64, error)) ([]float64, error) {
	n := len(labels)
	scores := make([]float64, n)

	for i := 0; i < n; i++ {
		own := labels[i]

		a := 0.0
		if len(clusters[own]) > 1 {
			sum := 0.0
			for _, j := range clusters[own] {
				if j == i {
					continue
				}
				d, err := dist(i, j)
				if err != nil {
					return nil, err
				}
				sum += d
			}
			a = sum / float64(len(clusters[own])-1)
		}

		b := math.Inf(1)
		for ci, cluster := range clusters {
			if ci == own {
				continue
			}
			sum := 0.0
			for _, j := range cluster {
				d, err := dist(i, j)
				if err != nil {
					return nil, err
				}
				sum += d
			}
			mean := sum / float64(len(cluster))
			if mean < b {
				b = mean
			}
		}

		denom := math.Max(a, b)
		if denom == 0 {
			scores[i] = 0
		} else {
			scores[i] = (b - a) / denom
		}
	}

	return scores, nil
}

// Mean returns the arithmetic mean of scores, or NaN for an empty slice.
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}

	return sum / float64(len(scores))
}
