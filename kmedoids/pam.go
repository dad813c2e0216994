package kmedoids

import (
	"math"

	"github.com/katalvlaran/lvcluster"
)

// Result is the outcome of a Run.
type Result struct {
	Clusters           lvcluster.ClusterSet
	Medoids            []int
	TotalDissimilarity float64
	Iterations         int
}

// nearest caches, for one point, the positions (within the medoids slice)
// of its nearest and second-nearest medoid and their distances.
type nearest struct {
	n1, n2 int
	d1, d2 float64
}

// Run performs the classical PAM SWAP local search starting from
// initialMedoids (indices into src). Each iteration recomputes, for every
// point, its nearest and second-nearest medoid, then evaluates every
// (medoid, non-medoid) swap candidate's effect on total dissimilarity using
// that cached table; the best-improving swap is applied, and the search
// stops when no swap improves total dissimilarity by more than tolerance,
// or after maxIter iterations.
//
// Returns lvcluster.ErrInvalidK if len(initialMedoids) is 0 or exceeds
// src.Size(), lvcluster.ErrIndexOutOfRange for an out-of-range medoid
// index, ErrDuplicateMedoid for a repeated one, or
// lvcluster.ErrInvalidParameter if tolerance <= 0 or maxIter <= 0.
func Run(src Source, initialMedoids []int, tolerance float64, maxIter int) (*Result, error) {
	n := src.Size()
	if err := lvcluster.ValidateK(len(initialMedoids), n); err != nil {
		return nil, err
	}
	if err := lvcluster.ValidateIndices(initialMedoids, n); err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(initialMedoids))
	for _, m := range initialMedoids {
		if seen[m] {
			return nil, ErrDuplicateMedoid
		}
		seen[m] = true
	}
	if tolerance <= 0 || maxIter <= 0 {
		return nil, lvcluster.ErrInvalidParameter
	}

	medoids := append([]int(nil), initialMedoids...)
	isMedoid := make(map[int]bool, len(medoids))
	for _, m := range medoids {
		isMedoid[m] = true
	}

	iter := 0
	for ; iter < maxIter; iter++ {
		table, err := computeNearest(src, medoids)
		if err != nil {
			return nil, err
		}

		bestMIdx, bestH, bestDelta := -1, -1, 0.0
		for mIdx := range medoids {
			for h := 0; h < n; h++ {
				if isMedoid[h] {
					continue
				}
				delta, err := evaluateSwap(src, table, mIdx, h)
				if err != nil {
					return nil, err
				}
				if delta < bestDelta {
					bestDelta, bestMIdx, bestH = delta, mIdx, h
				}
			}
		}

		if bestMIdx == -1 || bestDelta >= -tolerance {
			break
		}

		delete(isMedoid, medoids[bestMIdx])
		medoids[bestMIdx] = bestH
		isMedoid[bestH] = true
	}

	table, err := computeNearest(src, medoids)
	if err != nil {
		return nil, err
	}

	clusters := make(lvcluster.ClusterSet, len(medoids))
	var total float64
	for i, nb := range table {
		clusters[nb.n1] = append(clusters[nb.n1], i)
		total += nb.d1
	}
	nonEmpty := make(lvcluster.ClusterSet, 0, len(clusters))
	for _, c := range clusters {
		if len(c) > 0 {
			nonEmpty = append(nonEmpty, c)
		}
	}

	return &Result{
		Clusters:           nonEmpty,
		Medoids:            medoids,
		TotalDissimilarity: total,
		Iterations:         iter,
	}, nil
}

// computeNearest builds, for every item in src, its nearest and
// second-nearest medoid (by position within medoids) and their distances.
func computeNearest(src Source, medoids []int) ([]nearest, error) {
	out := make([]nearest, src.Size())
	for i := range out {
		n1, n2 := -1, -1
		d1, d2 := math.Inf(1), math.Inf(1)
		for mi, m := range medoids {
			d, err := src.Dist(i, m)
			if err != nil {
				return nil, err
			}
			if d < d1 {
				n1, d1, n2, d2 = mi, d, n1, d1
			} else if d < d2 {
				n2, d2 = mi, d
			}
		}
		out[i] = nearest{n1: n1, n2: n2, d1: d1, d2: d2}
	}

	return out, nil
}

// evaluateSwap returns the change in total dissimilarity (ΔT, negative
// meaning improvement) from replacing medoids[mIdx] with candidate h,
// computed in O(n) from the cached nearest/second-nearest table rather
// than recomputing every point's full assignment.
func evaluateSwap(src Source, table []nearest, mIdx, h int) (float64, error) {
	var total float64
	for i, nb := range table {
		dih, err := src.Dist(i, h)
		if err != nil {
			return 0, err
		}
		if nb.n1 == mIdx {
			if dih < nb.d2 {
				total += dih - nb.d1
			} else {
				total += nb.d2 - nb.d1
			}
		} else if dih < nb.d1 {
			total += dih - nb.d1
		}
	}

	return total, nil
}
