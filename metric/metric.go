package metric

import (
	"math"

	"github.com/katalvlaran/lvcluster"
)

// Metric computes a non-negative dissimilarity between two Points of equal
// arity. Implementations must satisfy m(a,a)=0 and m(a,b)=m(b,a).
type Metric func(a, b lvcluster.Point) (float64, error)

// checkDims validates that a and b are non-empty and share the same length.
// Complexity: O(1).
func checkDims(a, b lvcluster.Point) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyPoint
	}
	if len(a) != len(b) {
		return ErrDimensionMismatch
	}

	return nil
}

// EuclideanSquared returns the squared Euclidean distance metric. This is
// the package Default: it preserves the ordering of Euclidean distances
// without paying for a sqrt, so it is the right choice anywhere only
// relative distance matters (nearest-neighbor search, center assignment).
// Complexity: O(d) per call.
func EuclideanSquared() Metric {
	return func(a, b lvcluster.Point) (float64, error) {
		if err := checkDims(a, b); err != nil {
			return 0, err
		}
		var sum float64
		for i := range a {
			diff := a[i] - b[i]
			sum += diff * diff
		}

		return sum, nil
	}
}

// Default is EuclideanSquared, the metric used wherever algorithms do not
// accept an explicit one.
func Default() Metric { return EuclideanSquared() }

// Euclidean returns the ordinary (square-rooted) Euclidean distance.
func Euclidean() Metric {
	sq := EuclideanSquared()
	return func(a, b lvcluster.Point) (float64, error) {
		d2, err := sq(a, b)
		if err != nil {
			return 0, err
		}

		return math.Sqrt(d2), nil
	}
}

// Manhattan returns the L1 (city-block) distance.
func Manhattan() Metric {
	return func(a, b lvcluster.Point) (float64, error) {
		if err := checkDims(a, b); err != nil {
			return 0, err
		}
		var sum float64
		for i := range a {
			sum += math.Abs(a[i] - b[i])
		}

		return sum, nil
	}
}

// Chebyshev returns the L-infinity (maximum coordinate-wise) distance.
func Chebyshev() Metric {
	return func(a, b lvcluster.Point) (float64, error) {
		if err := checkDims(a, b); err != nil {
			return 0, err
		}
		var maxd float64
		for i := range a {
			if d := math.Abs(a[i] - b[i]); d > maxd {
				maxd = d
			}
		}

		return maxd, nil
	}
}

// Minkowski returns the Lp distance for the given degree p > 0. Degree 1 is
// Manhattan, degree 2 is Euclidean, and the limit as p -> infinity is
// Chebyshev (not special-cased here; callers wanting that limit should use
// Chebyshev directly).
func Minkowski(degree float64) Metric {
	if degree <= 0 {
		return func(lvcluster.Point, lvcluster.Point) (float64, error) { return 0, ErrInvalidDegree }
	}

	return func(a, b lvcluster.Point) (float64, error) {
		if err := checkDims(a, b); err != nil {
			return 0, err
		}
		var sum float64
		for i := range a {
			sum += math.Pow(math.Abs(a[i]-b[i]), degree)
		}

		return math.Pow(sum, 1/degree), nil
	}
}

// Canberra returns the Canberra distance: sum(|a_i-b_i| / (|a_i|+|b_i|)),
// skipping terms where both coordinates are zero (0/0 treated as 0).
func Canberra() Metric {
	return func(a, b lvcluster.Point) (float64, error) {
		if err := checkDims(a, b); err != nil {
			return 0, err
		}
		var sum float64
		for i := range a {
			denom := math.Abs(a[i]) + math.Abs(b[i])
			if denom == 0 {
				continue
			}
			sum += math.Abs(a[i]-b[i]) / denom
		}

		return sum, nil
	}
}

// ChiSquare returns the Chi-square distance: sum((a_i-b_i)^2 / (a_i+b_i)),
// skipping terms where both coordinates are zero.
func ChiSquare() Metric {
	return func(a, b lvcluster.Point) (float64, error) {
		if err := checkDims(a, b); err != nil {
			return 0, err
		}
		var sum float64
		for i := range a {
			denom := a[i] + b[i]
			if denom == 0 {
				continue
			}
			diff := a[i] - b[i]
			sum += (diff * diff) / denom
		}

		return sum, nil
	}
}

// Gower returns the Gower distance using a fixed per-dimension range
// (max-min over the dataset, precomputed by the caller): mean over
// dimensions of |a_i-b_i|/ranges[i], with a zero range contributing 0
// regardless of the coordinate values (degenerate dimension, no information).
func Gower(ranges []float64) Metric {
	return func(a, b lvcluster.Point) (float64, error) {
		if err := checkDims(a, b); err != nil {
			return 0, err
		}
		if len(ranges) != len(a) {
			return 0, ErrRangeMismatch
		}
		var sum float64
		for i := range a {
			if ranges[i] == 0 {
				continue
			}
			sum += math.Abs(a[i]-b[i]) / ranges[i]
		}

		return sum / float64(len(a)), nil
	}
}

// UserFunc adapts a plain coordinate-slice function into a Metric, checking
// dimensions before delegating. Returns a Metric that always fails with
// ErrNilUserFunc if f is nil.
func UserFunc(f func(a, b []float64) float64) Metric {
	if f == nil {
		return func(lvcluster.Point, lvcluster.Point) (float64, error) { return 0, ErrNilUserFunc }
	}

	return func(a, b lvcluster.Point) (float64, error) {
		if err := checkDims(a, b); err != nil {
			return 0, err
		}

		return f(a, b), nil
	}
}
