package kmedians

import "errors"

// ErrCentersDimensionMismatch indicates the initial centers do not share
// the dataset's point arity.
var ErrCentersDimensionMismatch = errors.New("kmedians: centers dimension mismatch")
