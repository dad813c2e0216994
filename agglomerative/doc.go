// Package agglomerative implements classic bottom-up hierarchical
// clustering: every point starts as its own cluster, and the pair of live
// clusters with minimum inter-cluster distance under a configurable
// linkage (single or centroid) is merged repeatedly until exactly k
// clusters remain.
package agglomerative
