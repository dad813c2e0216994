// Package dbscan implements density-based spatial clustering: a point is a
// core point if it has at least minPts neighbors within eps; clusters grow
// by transitively absorbing the neighbors of core points, while points
// reachable only as someone else's neighbor (border points) join the
// cluster without contributing their own neighborhood. Points reachable
// from no core point are noise.
//
// Run operates over raw points, accelerated by a k-d tree radius query.
// RunDistanceMatrix operates over a precomputed DistanceMatrix via a row
// scan, for callers whose points do not live in a vector space the tree
// can index.
package dbscan
