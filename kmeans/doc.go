// Package kmeans implements the classical K-Means partitional algorithm:
// repeated nearest-center assignment (accelerated by a k-d tree over the
// current centers) followed by component-wise mean recomputation, until the
// maximum per-center displacement drops to or below a tolerance or an
// iteration cap is hit.
package kmeans
