package xmeans

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/internal/rng"
	"github.com/katalvlaran/lvcluster/kmeans"
)

// Result is the outcome of Run.
type Result struct {
	Clusters lvcluster.ClusterSet
	Centers  []lvcluster.Point
}

// Run performs X-Means: starting from initialCenters, it alternates a full
// K-Means fit ("improve parameters") with an attempt to split every
// resulting cluster in two ("improve structure"), accepting a split only
// when the BIC of the two-center model exceeds the BIC of the one-center
// model for that cluster's own points. The search stops as soon as a round
// accepts no split, or the live center count reaches kmax. repeat internal
// 2-Means attempts are tried per cluster per round (different perturbed
// seeds), keeping the lowest-WCE attempt.
//
// If kmax <= len(initialCenters), no round ever runs (matching the
// referenced X-Means process loop, which gates its very first fit on the
// same condition): Run returns initialCenters unchanged and an empty
// Clusters.
//
// Returns lvcluster.ErrEmptyDataset, an ErrCentersDimensionMismatch-style
// error from the internal K-Means fit if a center's arity disagrees with
// the dataset, ErrInvalidKMax (kmax < 1), or ErrInvalidRepeat (repeat < 1).
func Run(dataset lvcluster.Dataset, initialCenters []lvcluster.Point, kmax int, tolerance float64, maxIter, repeat int, r *rand.Rand, opts ...Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if kmax < 1 {
		return nil, ErrInvalidKMax
	}
	if repeat < 1 {
		return nil, ErrInvalidRepeat
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	base := rng.Or(r)
	centers := clonePoints(initialCenters)
	var clusters lvcluster.ClusterSet

	for len(centers) < kmax {
		fit, err := kmeans.Run(dataset, centers, tolerance, maxIter, kmeans.WithMetric(cfg.metric))
		if err != nil {
			return nil, err
		}
		centers = fit.Centers
		clusters = fit.Clusters

		// fit.Clusters omits any center with no members (see kmeans.Result),
		// so it cannot be indexed by center position directly; walk centers
		// and consume clusters in order, skipping empty ones via EmptyClusters.
		empty := make(map[int]bool, len(fit.EmptyClusters))
		for _, idx := range fit.EmptyClusters {
			empty[idx] = true
		}

		newCenters := make([]lvcluster.Point, 0, len(centers)+len(clusters))
		live := len(centers)
		splitAny := false
		clusterPos := 0
		for ci := range centers {
			if empty[ci] {
				newCenters = append(newCenters, centers[ci])

				continue
			}
			cluster := clusters[clusterPos]
			clusterPos++

			if live >= kmax {
				newCenters = append(newCenters, centers[ci])

				continue
			}

			split, ok, err := trySplit(dataset, cluster, cfg, tolerance, maxIter, repeat, rng.Derive(base, uint64(ci)))
			if err != nil {
				return nil, err
			}
			if !ok {
				newCenters = append(newCenters, centers[ci])

				continue
			}

			newCenters = append(newCenters, split[0], split[1])
			live++
			splitAny = true
		}

		if !splitAny {
			break
		}
		centers = newCenters
	}

	return &Result{Clusters: clusters, Centers: centers}, nil
}

// trySplit attempts to split cluster (global dataset indices) into two via
// repeat restarts of a local 2-Means fit from perturbed seeds, keeping the
// lowest-WCE attempt, then compares its BIC against the one-center model's
// BIC over the same points. ok is false if the cluster has fewer than 2
// points, every restart failed to produce two non-empty children, or the
// split's BIC does not exceed the no-split BIC.
func trySplit(dataset lvcluster.Dataset, cluster lvcluster.Cluster, cfg config, tolerance float64, maxIter, repeat int, r *rand.Rand) ([2]lvcluster.Point, bool, error) {
	var zero [2]lvcluster.Point
	n := len(cluster)
	if n < 2 {
		return zero, false, nil
	}
	dim := dataset.Dim()

	mean, err := meanOf(dataset, cluster, dim)
	if err != nil {
		return zero, false, err
	}
	sumSqParent, err := sumSquaredDistance(dataset, cluster, mean, cfg.metric)
	if err != nil {
		return zero, false, err
	}
	bicParent := bic([]int{n}, sumSqParent, dim, 1)

	sub := make(lvcluster.Dataset, n)
	for i, idx := range cluster {
		sub[i] = dataset[idx]
	}

	bestWCE := math.Inf(1)
	var bestCenters [2]lvcluster.Point
	var bestCounts [2]int
	found := false

	for attempt := 0; attempt < repeat; attempt++ {
		attemptR := rng.Derive(r, uint64(attempt))
		seed1, seed2 := perturbedSeeds(mean, attemptR)
		fit, err := kmeans.Run(sub, []lvcluster.Point{seed1, seed2}, tolerance, maxIter, kmeans.WithMetric(cfg.metric))
		if err != nil {
			return zero, false, err
		}
		if len(fit.Clusters) != 2 {
			continue
		}
		if fit.WCE < bestWCE {
			bestWCE = fit.WCE
			bestCenters = [2]lvcluster.Point{fit.Centers[0], fit.Centers[1]}
			bestCounts = [2]int{len(fit.Clusters[0]), len(fit.Clusters[1])}
			found = true
		}
	}

	if !found {
		return zero, false, nil
	}

	bicChildren := bic([]int{bestCounts[0], bestCounts[1]}, bestWCE, dim, 2)
	if bicChildren <= bicParent {
		return zero, false, nil
	}

	return bestCenters, true, nil
}

// perturbedSeeds returns two points straddling mean, offset in opposite
// directions along an r-drawn random vector scaled to a small fraction of
// each coordinate's own magnitude (never zero, so a mean of all-zero
// coordinates still perturbs).
func perturbedSeeds(mean lvcluster.Point, r *rand.Rand) (lvcluster.Point, lvcluster.Point) {
	const perturbFraction = 0.1
	a := make(lvcluster.Point, len(mean))
	b := make(lvcluster.Point, len(mean))
	for d, v := range mean {
		u := r.Float64()*2 - 1
		eps := perturbFraction * (1 + math.Abs(v))
		a[d] = v + u*eps
		b[d] = v - u*eps
	}

	return a, b
}

// meanOf returns the component-wise mean of dataset[indices].
func meanOf(dataset lvcluster.Dataset, indices []int, dim int) (lvcluster.Point, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("xmeans: empty cluster")
	}
	sum := make(lvcluster.Point, dim)
	for _, idx := range indices {
		for d := 0; d < dim; d++ {
			sum[d] += dataset[idx][d]
		}
	}
	for d := range sum {
		sum[d] /= float64(len(indices))
	}

	return sum, nil
}

// sumSquaredDistance returns the sum, over dataset[indices], of m(point,
// center).
func sumSquaredDistance(dataset lvcluster.Dataset, indices []int, center lvcluster.Point, m func(a, b lvcluster.Point) (float64, error)) (float64, error) {
	var total float64
	for _, idx := range indices {
		d, err := m(dataset[idx], center)
		if err != nil {
			return 0, err
		}
		total += d
	}

	return total, nil
}

// bic returns the Bayesian Information Criterion of a spherical-Gaussian
// mixture model with len(counts) components, under shared dimensionality d
// and k free centers, given each component's point count and the combined
// sum-of-squared-distances-to-own-center across every component.
//
// Returns -Inf when the total point count does not exceed k, since the
// shared variance estimate is then undefined.
func bic(counts []int, totalSumSq float64, d, k int) float64 {
	r := 0
	for _, n := range counts {
		r += n
	}
	if r <= k {
		return math.Inf(-1)
	}

	variance := totalSumSq / float64(r-k)
	if variance <= 0 {
		variance = 1e-10
	}

	var logLik float64
	for _, n := range counts {
		if n == 0 {
			continue
		}
		nf := float64(n)
		logLik += -nf/2*math.Log(2*math.Pi) - nf*float64(d)/2*math.Log(variance) - (nf-float64(k))/2 + nf*math.Log(nf) - nf*math.Log(float64(r))
	}

	freeParams := float64((k - 1) + k*d + 1)

	return logLik - freeParams/2*math.Log(float64(r))
}

func clonePoints(pts []lvcluster.Point) []lvcluster.Point {
	out := make([]lvcluster.Point, len(pts))
	for i, p := range pts {
		out[i] = append(lvcluster.Point(nil), p...)
	}

	return out
}
