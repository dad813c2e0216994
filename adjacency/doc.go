// Package adjacency provides adjacency-collection variants for
// graph-shaped clustering algorithms (ROCK stores its theta-neighbor graph
// in a BitMatrix; no other package here uses them): a bit-matrix, a dense
// float/size matrix, and a per-node neighbor-set list, all sharing the
// Collection interface so callers can pick the representation that fits
// their density and access pattern without changing algorithm code.
//
// Unlike core.Graph in the reference library, these collections are keyed
// by plain integer point indices (0..n-1), since every clustering algorithm
// already operates over Dataset indices rather than string vertex IDs.
package adjacency
