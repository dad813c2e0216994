// Package elbow implements the elbow method for choosing a cluster count
// k: run K-Means for every k in [kmin, kmax], record its within-cluster
// error (WCE), and pick the k whose (k, WCE(k)) point lies farthest from
// the straight line connecting the range's two endpoints — the point of
// maximum "bend" in the WCE-vs-k curve.
package elbow
