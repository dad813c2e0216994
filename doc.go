// Package lvcluster is a native Go library of unsupervised clustering
// algorithms over numeric point data in Euclidean space.
//
// It accepts a Dataset (a sequence of equal-length Points) or a
// precomputed DistanceMatrix and produces a ClusterSet of point indices,
// together with algorithm-specific auxiliary outputs (centers, medoids,
// representatives, membership matrices, noise sets, ordering diagrams,
// block grids).
//
// Everything is organized under focused subpackages:
//
//	metric/        — distance functions shared by every algorithm
//	kdtree/        — balanced k-d tree for neighborhood queries
//	adjacency/     — adjacency container variants (bit-matrix, dense, list)
//	initcenters/   — center initialization (uniform random, k-means++)
//	workerpool/    — bounded worker pool + ParallelFor
//	kmeans/ kmedians/ kmedoids/ fcm/ seqcluster/ — partitional algorithms
//	dbscan/ optics/ clique/                      — density and grid algorithms
//	cure/ rock/ agglomerative/                   — hierarchical algorithms
//	silhouette/ xmeans/ gmeans/ elbow/           — model-selection wrappers
//
// This root package holds only the data model shared across all of the
// above: Point, Dataset, DistanceMatrix, Cluster, ClusterSet, Membership,
// and the common validation sentinels.
package lvcluster
