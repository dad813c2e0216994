package elbow

import "errors"

// ErrInvalidKRange indicates kmin < 1, kmax <= kmin, or kmax exceeds the
// dataset size.
var ErrInvalidKRange = errors.New("elbow: invalid [kmin, kmax] range")
