package agglomerative

import "errors"

// ErrInvalidLinkage indicates a Linkage value other than SingleLinkage or
// CentroidLinkage was supplied.
var ErrInvalidLinkage = errors.New("agglomerative: invalid linkage")
