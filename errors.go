package lvcluster

import "errors"

// Sentinel errors shared by every algorithm package. Algorithm-specific
// packages declare their own additional sentinels in their own errors.go
// and reuse these rather than redeclaring equivalents, so that
// errors.Is(err, lvcluster.ErrEmptyDataset) works uniformly regardless of
// which algorithm produced the error.
var (
	// ErrEmptyDataset indicates a Dataset with zero Points was supplied.
	ErrEmptyDataset = errors.New("lvcluster: dataset is empty")

	// ErrEmptyPoint indicates a zero-length Point was supplied.
	ErrEmptyPoint = errors.New("lvcluster: point is empty")

	// ErrInconsistentDimension indicates the Points of a Dataset do not all
	// share the same arity.
	ErrInconsistentDimension = errors.New("lvcluster: inconsistent point dimension")

	// ErrDimensionMismatch indicates two operands (e.g. a query point and a
	// tree, or a point and a center) have different arities.
	ErrDimensionMismatch = errors.New("lvcluster: dimension mismatch")

	// ErrInvalidK indicates k == 0, k > N, or another out-of-range cluster
	// count was requested.
	ErrInvalidK = errors.New("lvcluster: invalid cluster count")

	// ErrMalformedDistanceMatrix indicates a DistanceMatrix is not square,
	// not symmetric, has a non-zero diagonal, or contains a negative entry.
	ErrMalformedDistanceMatrix = errors.New("lvcluster: malformed distance matrix")

	// ErrIndexOutOfRange indicates a point index outside [0, N) was
	// referenced (e.g. an initial medoid or center index).
	ErrIndexOutOfRange = errors.New("lvcluster: index out of range")

	// ErrInvalidParameter indicates a scalar parameter (tolerance,
	// iteration cap, threshold, fuzzifier, ...) was outside its valid
	// domain.
	ErrInvalidParameter = errors.New("lvcluster: invalid parameter")
)
