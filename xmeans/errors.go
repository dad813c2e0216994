package xmeans

import "errors"

// ErrInvalidKMax indicates kmax < 1.
var ErrInvalidKMax = errors.New("xmeans: kmax must be >= 1")

// ErrInvalidRepeat indicates repeat < 1.
var ErrInvalidRepeat = errors.New("xmeans: repeat must be >= 1")
