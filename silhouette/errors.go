package silhouette

import "errors"

// ErrTooFewClusters indicates fewer than 2 clusters were supplied; b(i) is
// undefined without at least one neighboring cluster.
var ErrTooFewClusters = errors.New("silhouette: need at least 2 clusters")

// ErrIncompleteAssignment indicates the supplied ClusterSet does not
// assign every dataset point to exactly one cluster (a duplicate or a
// missing index).
var ErrIncompleteAssignment = errors.New("silhouette: clusters must partition every point exactly once")

// ErrInvalidKRange indicates kmin < 2, kmax <= kmin, or kmax-1 exceeds the
// dataset size.
var ErrInvalidKRange = errors.New("silhouette: invalid [kmin, kmax) range")
