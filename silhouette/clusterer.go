package silhouette

import (
	"math/rand"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/initcenters"
	"github.com/katalvlaran/lvcluster/kmeans"
	"github.com/katalvlaran/lvcluster/kmedians"
	"github.com/katalvlaran/lvcluster/kmedoids"
	"github.com/katalvlaran/lvcluster/metric"
)

// Clusterer partitions dataset into up to k clusters using r as its source
// of randomness (for center initialization). It may return fewer than k
// clusters if the underlying algorithm collapses empty ones.
type Clusterer func(dataset lvcluster.Dataset, k int, r *rand.Rand) (lvcluster.ClusterSet, error)

// KMeansClusterer composes k-means++ initialization with kmeans.Run.
func KMeansClusterer(tolerance float64, maxIter int, opts ...kmeans.Option) Clusterer {
	return func(dataset lvcluster.Dataset, k int, r *rand.Rand) (lvcluster.ClusterSet, error) {
		centers, err := initcenters.KMeansPP(dataset, k, metric.EuclideanSquared(), r)
		if err != nil {
			return nil, err
		}
		result, err := kmeans.Run(dataset, centers, tolerance, maxIter, opts...)
		if err != nil {
			return nil, err
		}

		return result.Clusters, nil
	}
}

// KMediansClusterer composes k-means++ initialization with kmedians.Run.
func KMediansClusterer(tolerance float64, maxIter int, opts ...kmedians.Option) Clusterer {
	return func(dataset lvcluster.Dataset, k int, r *rand.Rand) (lvcluster.ClusterSet, error) {
		centers, err := initcenters.KMeansPP(dataset, k, metric.EuclideanSquared(), r)
		if err != nil {
			return nil, err
		}
		result, err := kmedians.Run(dataset, centers, tolerance, maxIter, opts...)
		if err != nil {
			return nil, err
		}

		return result.Clusters, nil
	}
}

// KMedoidsClusterer composes k-means++ (over point indices) initialization
// with kmedoids.Run (PAM).
func KMedoidsClusterer(tolerance float64, maxIter int) Clusterer {
	return func(dataset lvcluster.Dataset, k int, r *rand.Rand) (lvcluster.ClusterSet, error) {
		src, err := kmedoids.FromPoints(dataset, nil)
		if err != nil {
			return nil, err
		}
		candidates := make([]int, len(dataset))
		for i := range candidates {
			candidates[i] = i
		}
		medoids, err := initcenters.KMeansPPSubset(dataset, candidates, k, metric.EuclideanSquared(), r)
		if err != nil {
			return nil, err
		}
		result, err := kmedoids.Run(src, medoids, tolerance, maxIter)
		if err != nil {
			return nil, err
		}

		return result.Clusters, nil
	}
}
