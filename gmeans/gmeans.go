package gmeans

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/initcenters"
	"github.com/katalvlaran/lvcluster/internal/rng"
	"github.com/katalvlaran/lvcluster/kmeans"
	"github.com/katalvlaran/lvcluster/metric"
)

// Result is the outcome of Run.
type Result struct {
	Clusters lvcluster.ClusterSet
	Centers  []lvcluster.Point
	WCE      float64
}

// Run performs G-Means: seeds initialK centers via k-means++, then
// alternates a full K-Means fit with an attempt to split every resulting
// cluster in two (local 2-Means from perturbed seeds, repeat restarts kept
// by lowest WCE). A split is accepted when the Anderson-Darling statistic
// of the cluster's points, projected onto the line through the two child
// centers, rejects the null of normality at the configured significance
// level. The search stops when a round accepts no split, or the live
// center count reaches len(dataset) (a cluster cannot split below one
// point per child).
//
// Returns lvcluster.ErrEmptyDataset, lvcluster.ErrInvalidK (initialK <= 0
// or initialK > len(dataset)), or ErrInvalidRepeat (repeat < 1).
func Run(dataset lvcluster.Dataset, initialK int, tolerance float64, maxIter, repeat int, r *rand.Rand, opts ...Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if err := lvcluster.ValidateK(initialK, len(dataset)); err != nil {
		return nil, err
	}
	if repeat < 1 {
		return nil, ErrInvalidRepeat
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	base := rng.Or(r)
	kmax := len(dataset)

	seeds, err := initcenters.KMeansPP(dataset, initialK, metric.EuclideanSquared(), rng.Derive(base, 0))
	if err != nil {
		return nil, err
	}
	centers := seeds
	var clusters lvcluster.ClusterSet
	var wce float64

	for len(centers) < kmax {
		fit, err := kmeans.Run(dataset, centers, tolerance, maxIter, kmeans.WithMetric(cfg.metric))
		if err != nil {
			return nil, err
		}
		centers = fit.Centers
		clusters = fit.Clusters
		wce = fit.WCE

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

			split, ok, err := trySplit(dataset, cluster, cfg, tolerance, maxIter, repeat, rng.Derive(base, uint64(ci)+1))
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

	return &Result{Clusters: clusters, Centers: centers, WCE: wce}, nil
}

// trySplit mirrors xmeans.trySplit's restart-and-keep-best-WCE search for
// a local 2-Means split, but gates acceptance on the Anderson-Darling
// normality test of the cluster's points projected onto the line joining
// the two candidate centers, instead of a BIC comparison.
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

	sub := make(lvcluster.Dataset, n)
	for i, idx := range cluster {
		sub[i] = dataset[idx]
	}

	bestWCE := math.Inf(1)
	var bestCenters [2]lvcluster.Point
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
			found = true
		}
	}

	if !found {
		return zero, false, nil
	}

	projections, err := project(dataset, cluster, bestCenters[0], bestCenters[1])
	if err != nil {
		return zero, false, err
	}
	a2 := andersonDarling(projections)
	critical := adjustedCritical(criticalValues[cfg.significance], len(projections))
	if a2 <= critical {
		return zero, false, nil // looks normal: no split
	}

	return bestCenters, true, nil
}

// project returns, for every dataset[cluster[i]], its scalar projection
// onto the line through c1 and c2: dot(point-c1, c2-c1) / |c2-c1|.
func project(dataset lvcluster.Dataset, cluster lvcluster.Cluster, c1, c2 lvcluster.Point) ([]float64, error) {
	dim := len(c1)
	direction := make([]float64, dim)
	var norm float64
	for d := 0; d < dim; d++ {
		direction[d] = c2[d] - c1[d]
		norm += direction[d] * direction[d]
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		// Degenerate: both candidate centers coincide. Every projection is
		// 0, a constant to which andersonDarling assigns A^2 = 0 (zero
		// variance), i.e. normal-looking, so the split is refused since it
		// carries no separating information.
		out := make([]float64, len(cluster))

		return out, nil
	}

	out := make([]float64, len(cluster))
	for i, idx := range cluster {
		var dot float64
		for d := 0; d < dim; d++ {
			dot += (dataset[idx][d] - c1[d]) * direction[d]
		}
		out[i] = dot / norm
	}

	return out, nil
}

// andersonDarling returns the Anderson-Darling A^2 statistic for the null
// hypothesis that x is drawn from a normal distribution with unknown mean
// and variance. x is standardized (zero mean, unit variance) internally;
// callers compare the result against adjustedCritical.
//
// Returns 0 (interpreted as "looks normal", i.e. never rejects) when x has
// fewer than 2 points or zero variance, since the test is undefined there.
func andersonDarling(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}

	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)

	var variance float64
	for _, v := range x {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)
	if variance <= 0 {
		return 0
	}
	std := math.Sqrt(variance)

	standardized := make([]float64, n)
	for i, v := range x {
		standardized[i] = (v - mean) / std
	}
	sort.Float64s(standardized)

	const eps = 1e-12
	var sum float64
	for i := 0; i < n; i++ {
		phiLow := clamp(normalCDF(standardized[i]), eps, 1-eps)
		phiHigh := clamp(normalCDF(standardized[n-1-i]), eps, 1-eps)
		sum += float64(2*(i+1)-1) * (math.Log(phiLow) + math.Log(1-phiHigh))
	}

	return -float64(n) - sum/float64(n)
}

// adjustedCritical applies the standard small-sample correction to an
// Anderson-Darling critical value.
func adjustedCritical(c float64, n int) float64 {
	nf := float64(n)

	return c / (1 + 4/nf - 25/(nf*nf))
}

// normalCDF is the standard normal cumulative distribution function.
func normalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// perturbedSeeds returns two points straddling mean, offset in opposite
// directions along an r-drawn random vector scaled to a small fraction of
// each coordinate's own magnitude.
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
