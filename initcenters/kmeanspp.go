package initcenters

import (
	"math/rand"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/internal/rng"
	"github.com/katalvlaran/lvcluster/metric"
)

// KMeansPP chooses k centers from dataset via k-means++: the first center
// is drawn uniformly at random (from r, routed through internal/rng), and
// each subsequent center is chosen *deterministically* as the point with
// the largest squared shortest distance to the centers already chosen —
// the spec's "maximum D^2" rule, which replaces the classical
// weighted-sampling step so that a fixed RNG yields repeatable centers.
//
// m is the metric used to measure distance to the nearest existing center;
// a nil m defaults to metric.EuclideanSquared(). Returns ErrEmptyDataset if
// dataset is empty, lvcluster.ErrInvalidK if k <= 0 or k > len(dataset).
func KMeansPP(dataset lvcluster.Dataset, k int, m metric.Metric, r *rand.Rand) ([]lvcluster.Point, error) {
	idx, err := kMeansPPIndices(dataset, nil, k, m, r)
	if err != nil {
		return nil, err
	}

	return pointsFor(dataset, idx), nil
}

// KMeansPPSubset is KMeansPP restricted to a caller-provided candidate
// index set.
func KMeansPPSubset(dataset lvcluster.Dataset, candidates []int, k int, m metric.Metric, r *rand.Rand) ([]int, error) {
	return kMeansPPIndices(dataset, candidates, k, m, r)
}

// kMeansPPIndices implements the shared selection loop over pool (indices
// into dataset). At each step it recomputes, for every remaining candidate,
// its shortest squared distance to any already-chosen center, then picks
// the candidate maximizing that value.
func kMeansPPIndices(dataset lvcluster.Dataset, candidates []int, k int, m metric.Metric, r *rand.Rand) ([]int, error) {
	if m == nil {
		m = metric.EuclideanSquared()
	}
	pool := candidates
	if pool == nil {
		pool = make([]int, len(dataset))
		for i := range pool {
			pool[i] = i
		}
	}
	if len(pool) == 0 {
		return nil, ErrEmptyDataset
	}
	if k <= 0 || k > len(pool) {
		return nil, lvcluster.ErrInvalidK
	}

	rr := rng.Or(r)
	chosen := make([]int, 0, k)
	chosen = append(chosen, pool[rr.Intn(len(pool))])

	for len(chosen) < k {
		bestPoolIdx := -1
		bestDist := -1.0
		for i, p := range pool {
			shortest, err := shortestSquaredDistance(dataset, p, chosen, m)
			if err != nil {
				return nil, err
			}
			if shortest > bestDist {
				bestDist = shortest
				bestPoolIdx = i
			}
		}
		chosen = append(chosen, pool[bestPoolIdx])
	}

	return chosen, nil
}

// shortestSquaredDistance returns the smallest m(dataset[p], dataset[c])^2
// over c in centers.
func shortestSquaredDistance(dataset lvcluster.Dataset, p int, centers []int, m metric.Metric) (float64, error) {
	shortest := -1.0
	for _, c := range centers {
		d, err := m(dataset[p], dataset[c])
		if err != nil {
			return 0, err
		}
		d2 := d * d
		if shortest < 0 || d2 < shortest {
			shortest = d2
		}
	}

	return shortest, nil
}
