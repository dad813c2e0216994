package fcm

import "errors"

// ErrCentersDimensionMismatch indicates the initial centers do not share
// the dataset's point arity.
var ErrCentersDimensionMismatch = errors.New("fcm: centers dimension mismatch")

// ErrInvalidFuzzifier indicates a fuzzifier m <= 1 was supplied.
var ErrInvalidFuzzifier = errors.New("fcm: fuzzifier must be > 1")
