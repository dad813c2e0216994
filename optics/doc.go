// Package optics implements Ordering Points To Identify the Clustering
// Structure: instead of a hard partition, Run produces a linear ordering of
// the dataset with a core distance and reachability distance attached to
// each point, from which ExtractClusters recovers a DBSCAN-equivalent
// partition for any radius, and AutoRadius searches for a radius that
// yields a target cluster count.
package optics
