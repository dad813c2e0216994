// Package clique implements CLIQUE, a grid-based clustering algorithm: the
// bounding box of the dataset is cut into an I×I×... grid of blocks, each
// point falls into exactly one block by its per-dimension coordinate, a
// block is dense once it holds at least tau points, and dense blocks that
// touch along any single axis merge into one cluster. Points in non-dense
// blocks are noise.
package clique
