package kmeans

import "errors"

// ErrCentersDimensionMismatch indicates the initial centers do not share the
// dataset's point arity.
var ErrCentersDimensionMismatch = errors.New("kmeans: centers dimension mismatch")
