package kmedoids

import (
	"math"

	"github.com/katalvlaran/lvcluster"
)

// Build performs PAM BUILD: a deterministic greedy medoid seeding. The
// first medoid is the item minimizing total dissimilarity to all others;
// each subsequent medoid is chosen to maximize the sum of positive gains
// Σᵢ max(0, Dprev(i) − d(i,candidate)), where Dprev(i) is i's distance to
// the nearest medoid chosen so far.
//
// Returns lvcluster.ErrInvalidK if k <= 0 or k > src.Size().
func Build(src Source, k int) ([]int, error) {
	n := src.Size()
	if err := lvcluster.ValidateK(k, n); err != nil {
		return nil, err
	}

	best, bestTotal := -1, math.Inf(1)
	for i := 0; i < n; i++ {
		var total float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d, err := src.Dist(i, j)
			if err != nil {
				return nil, err
			}
			total += d
		}
		if total < bestTotal {
			bestTotal, best = total, i
		}
	}

	medoids := []int{best}
	chosen := map[int]bool{best: true}
	dprev := make([]float64, n)
	for i := range dprev {
		d, err := src.Dist(i, best)
		if err != nil {
			return nil, err
		}
		dprev[i] = d
	}

	for len(medoids) < k {
		bestCand, bestGain := -1, -1.0
		for c := 0; c < n; c++ {
			if chosen[c] {
				continue
			}
			var gain float64
			for i := 0; i < n; i++ {
				d, err := src.Dist(i, c)
				if err != nil {
					return nil, err
				}
				if g := dprev[i] - d; g > 0 {
					gain += g
				}
			}
			if gain > bestGain {
				bestGain, bestCand = gain, c
			}
		}

		medoids = append(medoids, bestCand)
		chosen[bestCand] = true
		for i := 0; i < n; i++ {
			d, err := src.Dist(i, bestCand)
			if err != nil {
				return nil, err
			}
			if d < dprev[i] {
				dprev[i] = d
			}
		}
	}

	return medoids, nil
}
