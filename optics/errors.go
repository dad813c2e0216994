package optics

import "errors"

// ErrInvalidEps indicates a non-positive neighborhood radius.
var ErrInvalidEps = errors.New("optics: eps must be > 0")

// ErrInvalidMinPts indicates a minPts <= 0.
var ErrInvalidMinPts = errors.New("optics: minPts must be > 0")

// ErrInvalidTargetClusters indicates AutoRadius was asked for a
// non-positive target cluster count.
var ErrInvalidTargetClusters = errors.New("optics: target cluster count must be > 0")
