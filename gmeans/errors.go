package gmeans

import "errors"

// ErrInvalidRepeat indicates repeat < 1.
var ErrInvalidRepeat = errors.New("gmeans: repeat must be >= 1")
