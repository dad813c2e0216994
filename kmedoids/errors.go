package kmedoids

import "errors"

// ErrDuplicateMedoid indicates the initial medoid list contains the same
// index more than once.
var ErrDuplicateMedoid = errors.New("kmedoids: duplicate initial medoid")
