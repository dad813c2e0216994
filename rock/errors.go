package rock

import "errors"

// ErrInvalidTheta indicates a similarity radius theta outside the open
// interval (0, 1); theta=1 makes the goodness normalization denominator
// vanish for every pair of equal-size clusters, and theta<=0 admits no
// neighbor pairs at all.
var ErrInvalidTheta = errors.New("rock: theta must be in (0, 1)")
