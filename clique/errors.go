package clique

import "errors"

// ErrInvalidIntervals indicates intervals <= 0.
var ErrInvalidIntervals = errors.New("clique: intervals must be > 0")

// ErrInvalidThreshold indicates a density threshold <= 0.
var ErrInvalidThreshold = errors.New("clique: density threshold must be > 0")
