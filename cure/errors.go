package cure

import "errors"

// ErrInvalidRepresentatives indicates a representatives-per-cluster count
// r <= 0.
var ErrInvalidRepresentatives = errors.New("cure: representatives per cluster must be > 0")

// ErrInvalidShrink indicates a shrink coefficient outside [0, 1].
var ErrInvalidShrink = errors.New("cure: shrink coefficient must be in [0, 1]")
