// Package kmedoids implements K-Medoids (PAM): partitional clustering
// whose centers are always actual dataset points. It accepts either raw
// points plus a metric or a precomputed distance matrix (see Source), runs
// the classical PAM SWAP local search accelerated by a cached
// nearest/second-nearest table, and offers PAM BUILD as a deterministic
// greedy initializer.
package kmedoids
