// Package silhouette scores a clustering's internal cohesion/separation
// per point and composes that score with a pluggable clusterer to search
// for the best cluster count k over a range.
//
// For point i in cluster C: a(i) is the mean distance from i to the other
// members of C (0 if C is a singleton); b(i) is the minimum, over every
// other cluster D, of the mean distance from i to D's members; and
// s(i) = (b(i)-a(i)) / max(a(i), b(i)), in [-1, 1]. Both a points+metric
// input mode (Score) and a precomputed distance-matrix mode
// (ScoreDistanceMatrix) are supported.
package silhouette
