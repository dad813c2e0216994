package dbscan

import "errors"

// ErrInvalidEps indicates a non-positive neighborhood radius.
var ErrInvalidEps = errors.New("dbscan: eps must be > 0")

// ErrInvalidMinPts indicates a minPts <= 0.
var ErrInvalidMinPts = errors.New("dbscan: minPts must be > 0")
