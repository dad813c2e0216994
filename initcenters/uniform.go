package initcenters

import (
	"math/rand"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/internal/rng"
)

// Uniform draws k distinct point indices from dataset uniformly without
// replacement, using r (nil selects a deterministic default stream via
// internal/rng). Per the spec: k == len(dataset) returns the dataset
// verbatim (index order); k > len(dataset) or k == 0 return an empty
// slice, not an error — these are defined "initializer produced nothing
// useful" outcomes, distinct from the invalid-argument errors raised by
// the algorithms that consume the result.
func Uniform(dataset lvcluster.Dataset, k int, r *rand.Rand) []lvcluster.Point {
	return pointsFor(dataset, UniformIndices(len(dataset), k, r))
}

// UniformIndices is Uniform's index-only form, used directly by algorithms
// (e.g. PAM BUILD candidate seeding) that want indices rather than copied
// Points.
func UniformIndices(n, k int, r *rand.Rand) []int {
	if k == n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}

		return out
	}
	if k <= 0 || k > n {
		return nil
	}

	return rng.SampleDistinct(n, k, r)
}

// UniformSubset is Uniform restricted to a caller-provided candidate index
// set (e.g. non-medoid points in PAM), returning k distinct indices drawn
// from candidates.
func UniformSubset(candidates []int, k int, r *rand.Rand) []int {
	idx := UniformIndices(len(candidates), k, r)
	if idx == nil {
		return nil
	}
	out := make([]int, len(idx))
	for i, c := range idx {
		out[i] = candidates[c]
	}

	return out
}

func pointsFor(dataset lvcluster.Dataset, idx []int) []lvcluster.Point {
	if idx == nil {
		return nil
	}
	out := make([]lvcluster.Point, len(idx))
	for i, j := range idx {
		out[i] = append(lvcluster.Point(nil), dataset[j]...)
	}

	return out
}
