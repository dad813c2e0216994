package fcm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/metric"
)

// Result is the outcome of a Run.
type Result struct {
	Membership lvcluster.Membership
	Centers    []lvcluster.Point
	Iterations int
}

// Run performs Fuzzy C-Means: alternating membership and center updates
// until the maximum center displacement drops to or below tolerance or
// maxIter iterations have run.
//
// fuzzifier (m > 1, 2 is the conventional default) controls how soft the
// partition is; values closer to 1 approach a hard partition.
//
// Returns lvcluster.ErrEmptyDataset, lvcluster.ErrInvalidK,
// ErrCentersDimensionMismatch, ErrInvalidFuzzifier (fuzzifier <= 1), or
// lvcluster.ErrInvalidParameter (tolerance <= 0 or maxIter <= 0).
func Run(dataset lvcluster.Dataset, initialCenters []lvcluster.Point, fuzzifier, tolerance float64, maxIter int, opts ...Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if err := lvcluster.ValidateK(len(initialCenters), len(dataset)); err != nil {
		return nil, err
	}
	dim := dataset.Dim()
	for i, c := range initialCenters {
		if len(c) != dim {
			return nil, fmt.Errorf("fcm: center %d has dimension %d, want %d: %w", i, len(c), dim, ErrCentersDimensionMismatch)
		}
	}
	if fuzzifier <= 1 {
		return nil, ErrInvalidFuzzifier
	}
	if tolerance <= 0 || maxIter <= 0 {
		return nil, lvcluster.ErrInvalidParameter
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.metric == nil {
		cfg.metric = metric.Euclidean()
	}

	exponent := 2 / (fuzzifier - 1)
	centers := clonePoints(initialCenters)

	var membership lvcluster.Membership
	iter := 0
	for ; iter < maxIter; iter++ {
		u, err := computeMembership(dataset, centers, cfg.metric, exponent)
		if err != nil {
			return nil, err
		}
		membership = u

		newCenters := computeCenters(dataset, membership, fuzzifier, dim)
		displacement, err := maxDisplacement(centers, newCenters, cfg.metric)
		if err != nil {
			return nil, err
		}
		centers = newCenters

		if displacement <= tolerance {
			break
		}
	}

	u, err := computeMembership(dataset, centers, cfg.metric, exponent)
	if err != nil {
		return nil, err
	}
	membership = u

	return &Result{Membership: membership, Centers: centers, Iterations: iter}, nil
}

// computeMembership returns U(i,j) = 1 / sum_l (d(i,j)/d(i,l))^exponent,
// with the coincidence rule: if point i exactly coincides with center j,
// U(i,j)=1 and every other column of row i is 0.
func computeMembership(dataset lvcluster.Dataset, centers []lvcluster.Point, m metric.Metric, exponent float64) (lvcluster.Membership, error) {
	k := len(centers)
	out := make(lvcluster.Membership, len(dataset))
	dists := make([]float64, k)

	for i, x := range dataset {
		coincide := -1
		for j, c := range centers {
			d, err := m(x, c)
			if err != nil {
				return nil, err
			}
			dists[j] = d
			if d == 0 {
				coincide = j
			}
		}

		row := make([]float64, k)
		if coincide >= 0 {
			row[coincide] = 1
		} else {
			for j := range row {
				var sum float64
				for l := range centers {
					sum += math.Pow(dists[j]/dists[l], exponent)
				}
				row[j] = 1 / sum
			}
		}
		out[i] = row
	}

	return out, nil
}

// computeCenters returns vⱼ = Σᵢ U(i,j)^m·xᵢ / Σᵢ U(i,j)^m for each center j.
func computeCenters(dataset lvcluster.Dataset, membership lvcluster.Membership, fuzzifier float64, dim int) []lvcluster.Point {
	k := len(membership[0])
	numer := make([]lvcluster.Point, k)
	denom := make([]float64, k)
	for j := range numer {
		numer[j] = make(lvcluster.Point, dim)
	}

	for i, row := range membership {
		for j, u := range row {
			um := math.Pow(u, fuzzifier)
			denom[j] += um
			for d := 0; d < dim; d++ {
				numer[j][d] += um * dataset[i][d]
			}
		}
	}

	out := make([]lvcluster.Point, k)
	for j := range out {
		p := make(lvcluster.Point, dim)
		for d := 0; d < dim; d++ {
			p[d] = numer[j][d] / denom[j]
		}
		out[j] = p
	}

	return out
}

func maxDisplacement(a, b []lvcluster.Point, m metric.Metric) (float64, error) {
	var max float64
	for i := range a {
		d, err := m(a[i], b[i])
		if err != nil {
			return 0, err
		}
		if d > max {
			max = d
		}
	}

	return max, nil
}

func clonePoints(pts []lvcluster.Point) []lvcluster.Point {
	out := make([]lvcluster.Point, len(pts))
	for i, p := range pts {
		out[i] = append(lvcluster.Point(nil), p...)
	}

	return out
}
