package adjacency

import "errors"

// ErrIndexOutOfRange is returned when a node index falls outside [0, Size()).
var ErrIndexOutOfRange = errors.New("adjacency: index out of range")

// ErrInvalidSize is returned when a collection is constructed with a
// non-positive size.
var ErrInvalidSize = errors.New("adjacency: size must be > 0")
