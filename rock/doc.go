// Package rock implements ROCK (RObust Clustering using linKs) for
// categorical/point data: two points are neighbors when their distance is
// below a similarity radius theta, and two clusters are merged by how many
// common neighbor-pairs they share (their "link" count) rather than by
// raw geometric distance. The link count is normalized by a
// cluster-size-dependent "goodness" function so that merges favor pairs
// whose link density exceeds what their sizes alone would predict,
// letting ROCK recover clusters that are not well separated by distance
// alone but share strong neighbor overlap.
package rock
