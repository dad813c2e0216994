package seqcluster

import "errors"

// ErrInvalidThreshold indicates a non-positive threshold, or for TTSAS a
// second threshold that does not exceed the first.
var ErrInvalidThreshold = errors.New("seqcluster: invalid threshold")

// ErrInvalidMaxClusters indicates a maxClusters <= 0.
var ErrInvalidMaxClusters = errors.New("seqcluster: maxClusters must be > 0")
