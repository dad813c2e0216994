package kdtree

import (
	"sort"

	"github.com/katalvlaran/lvcluster"
)

// Build constructs a balanced k-d tree over points. payloads, if non-nil,
// must have the same length as points; payloads[i] is attached to
// points[i] and returned alongside it from every query. Build returns
// ErrEmptyDataset for zero points, ErrInconsistentDimension if the points
// do not all share the same arity, and ErrPayloadLengthMismatch on a
// mismatched payload slice.
//
// Complexity: O(N log^2 N) (a stable sort by the discriminator dimension at
// each of the O(log N) levels).
func Build(points []lvcluster.Point, payloads []any) (*Tree, error) {
	if len(points) == 0 {
		return nil, ErrEmptyDataset
	}
	dim := len(points[0])
	for _, p := range points {
		if len(p) != dim {
			return nil, ErrInconsistentDimension
		}
	}
	if payloads != nil && len(payloads) != len(points) {
		return nil, ErrPayloadLengthMismatch
	}

	t := &Tree{dim: dim, nodes: make([]node, 0, len(points))}
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	t.root = t.buildRecursive(points, payloads, idx, 0, none)

	return t, nil
}

// buildRecursive builds the subtree over idx (indices into points/payloads)
// at the given depth, with parent as the arena index of its parent (none
// for the overall root), and returns the arena index of the subtree's root.
//
// The discriminator for this level is depth mod dim. idx is sorted
// in-place (stably) by that dimension, then the root is chosen as the
// leftmost index whose value equals the sorted median's value — the
// tie-break that keeps duplicate coordinates on the correct side.
func (t *Tree) buildRecursive(points []lvcluster.Point, payloads []any, idx []int, depth, parent int) int {
	if len(idx) == 0 {
		return none
	}

	disc := depth % t.dim
	sort.SliceStable(idx, func(i, j int) bool {
		return points[idx[i]][disc] < points[idx[j]][disc]
	})

	m := len(idx) / 2
	medianVal := points[idx[m]][disc]
	for m > 0 && points[idx[m-1]][disc] == medianVal {
		m--
	}

	rootSrc := idx[m]
	var pl any
	if payloads != nil {
		pl = payloads[rootSrc]
	}

	selfIdx := len(t.nodes)
	t.nodes = append(t.nodes, node{
		point:  points[rootSrc],
		payload: pl,
		disc:   disc,
		left:   none,
		right:  none,
		parent: parent,
		srcIdx: rootSrc,
	})

	left := t.buildRecursive(points, payloads, idx[:m], depth+1, selfIdx)
	right := t.buildRecursive(points, payloads, idx[m+1:], depth+1, selfIdx)
	t.nodes[selfIdx].left = left
	t.nodes[selfIdx].right = right

	return selfIdx
}
