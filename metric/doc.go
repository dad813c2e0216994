// Package metric provides the distance-function abstraction shared by every
// clustering algorithm in lvcluster.
//
// A Metric is a pure function m(a,b) -> (distance, error) with m(a,a)=0 and
// m(a,b)=m(b,a). Metrics are stateless apart from their fixed construction
// parameters (e.g. Minkowski's degree, Gower's per-dimension ranges), so a
// constructed Metric value is safe to share across goroutines.
//
// EuclideanSquared is the package default: the form used wherever only the
// ordering of distances matters (neighbor search, nearest-center
// assignment), since it avoids a sqrt per comparison.
package metric
