package kdtree

import "github.com/katalvlaran/lvcluster"

// none is the arena-index sentinel meaning "no such child/parent".
const none = -1

// node is one arena slot: a point, its discriminator dimension, an opaque
// payload, and arena-index links to left/right children and its parent.
type node struct {
	point   lvcluster.Point
	payload any
	disc    int
	left    int
	right   int
	parent  int
	srcIdx  int // index of this point in the original Build slice
}

// Tree is a balanced k-d tree over a fixed set of points, arena-indexed: all
// nodes live in a single slice and children/parent are integer indices into
// it rather than pointers. A zero-value Tree (or one built from zero
// points) is a valid, empty tree: every query on it returns an empty
// result, never an error.
type Tree struct {
	nodes []node
	dim   int
	root  int
}

// Neighbor is one result of a radius or k-nearest-neighbor query: the
// query-to-node squared Euclidean distance (the tree's only metric) and
// the matched point index (as passed to Build) and payload.
type Neighbor struct {
	Distance float64
	Index    int
	Point    lvcluster.Point
	Payload  any
}

// Len returns the number of points held in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}

	return len(t.nodes)
}

// Dim returns the arity of the tree's points, or -1 for an empty tree.
func (t *Tree) Dim() int {
	if t == nil || len(t.nodes) == 0 {
		return -1
	}

	return t.dim
}
