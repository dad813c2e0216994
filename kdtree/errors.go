package kdtree

import "errors"

// Sentinel errors for kdtree package operations.
var (
	// ErrEmptyDataset indicates Build was called with no points.
	ErrEmptyDataset = errors.New("kdtree: dataset is empty")

	// ErrInconsistentDimension indicates the points passed to Build do not
	// all share the same arity.
	ErrInconsistentDimension = errors.New("kdtree: inconsistent point dimension")

	// ErrDimensionMismatch indicates a query point's dimension does not
	// match the tree's dimension. Per the spec, this is a programming
	// error at the boundary, not a recoverable empty-result case.
	ErrDimensionMismatch = errors.New("kdtree: query dimension mismatch")

	// ErrPayloadLengthMismatch indicates a payload slice was supplied whose
	// length does not match the point count.
	ErrPayloadLengthMismatch = errors.New("kdtree: payload length mismatch")
)
