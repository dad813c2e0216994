package kdtree

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvcluster"
)

// sqDist returns the squared Euclidean distance between a and b; both are
// assumed to already share t's dimension.
func sqDist(a, b lvcluster.Point) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return sum
}

// checkDim returns ErrDimensionMismatch if query's arity does not match the
// tree's. Per the spec, a dimension mismatch is a programming error
// rejected at the boundary, distinct from "empty tree" or "no match",
// which return an empty/nil result instead of an error.
func (t *Tree) checkDim(query lvcluster.Point) error {
	if t == nil || len(t.nodes) == 0 {
		return nil
	}
	if len(query) != t.dim {
		return ErrDimensionMismatch
	}

	return nil
}

// toNeighbor builds a Neighbor result from an arena node index and a
// precomputed distance.
func (t *Tree) toNeighbor(idx int, dist float64) Neighbor {
	n := &t.nodes[idx]

	return Neighbor{Distance: dist, Index: n.srcIdx, Point: n.point, Payload: n.payload}
}

func pointEqual(a, b lvcluster.Point) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// FindNode performs an exact-match lookup: it returns the Neighbor whose
// Point equals query component-wise (distance 0), or (Neighbor{}, false) if
// no such point exists. Complexity: O(log N) expected.
func (t *Tree) FindNode(query lvcluster.Point) (Neighbor, bool) {
	if err := t.checkDim(query); err != nil || t.Len() == 0 {
		return Neighbor{}, false
	}

	idx := t.root
	for idx != none {
		n := &t.nodes[idx]
		if pointEqual(n.point, query) {
			return t.toNeighbor(idx, 0), true
		}
		// Left subtree holds strictly-lesser disc values (the build rule's
		// leftmost-equal tie-break); ties and greater values go right, so
		// remaining duplicates on this axis are still reachable.
		if query[n.disc] < n.point[n.disc] {
			idx = n.left
		} else {
			idx = n.right
		}
	}

	return Neighbor{}, false
}

// FindNodeWithPayload is FindNode plus an additional payload equality
// constraint, via eq(candidatePayload) -> matches.
func (t *Tree) FindNodeWithPayload(query lvcluster.Point, eq func(payload any) bool) (Neighbor, bool) {
	if err := t.checkDim(query); err != nil || t.Len() == 0 {
		return Neighbor{}, false
	}

	idx := t.root
	for idx != none {
		n := &t.nodes[idx]
		if pointEqual(n.point, query) && eq(n.payload) {
			return t.toNeighbor(idx, 0), true
		}
		if query[n.disc] < n.point[n.disc] {
			idx = n.left
		} else {
			idx = n.right
		}
	}

	return Neighbor{}, false
}

// walkPruned performs the standard k-d recursive descent with hyperplane
// pruning: visit(idx, d) is called for every node within reach, where d is
// its squared distance to query and idx is its arena index; bound()
// returns the current pruning radius (squared). The near child is always
// visited; the far child is visited only if the squared distance from
// query to the splitting hyperplane does not exceed bound().
func (t *Tree) walkPruned(idx int, query lvcluster.Point, visit func(idx int, d float64), bound func() float64) {
	if idx == none {
		return
	}
	n := &t.nodes[idx]
	visit(idx, sqDist(n.point, query))

	diff := query[n.disc] - n.point[n.disc]
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}

	t.walkPruned(near, query, visit, bound)
	if diff*diff <= bound() {
		t.walkPruned(far, query, visit, bound)
	}
}

// FindNearestDist returns one point within radius of query (compared via
// squared Euclidean distance against radius^2), or (Neighbor{}, false) if
// none exists or the tree is empty. Complexity: O(log N) expected.
func (t *Tree) FindNearestDist(query lvcluster.Point, radius float64) (Neighbor, bool) {
	if err := t.checkDim(query); err != nil || t.Len() == 0 {
		return Neighbor{}, false
	}

	r2 := radius * radius
	best := none
	bestDist := r2
	t.walkPruned(t.root, query, func(idx int, d float64) {
		if d <= bestDist {
			bestDist = d
			best = idx
		}
	}, func() float64 { return bestDist })

	if best == none {
		return Neighbor{}, false
	}

	return t.toNeighbor(best, bestDist), true
}

// FindNearestNodes returns every point within radius of query, unordered,
// as the spec specifies. Complexity: O(log N + m) expected, m = result size.
func (t *Tree) FindNearestNodes(query lvcluster.Point, radius float64) ([]Neighbor, error) {
	if err := t.checkDim(query); err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, nil
	}

	r2 := radius * radius
	var out []Neighbor
	t.walkPruned(t.root, query, func(idx int, d float64) {
		if d <= r2 {
			out = append(out, t.toNeighbor(idx, d))
		}
	}, func() float64 { return r2 })

	return out, nil
}

// kNearestItem is one entry of the bounded max-heap used by FindKNearest:
// the heap root (index 0) is always the current worst (farthest) candidate.
type kNearestItem struct {
	idx  int
	dist float64
}

type maxHeap []kNearestItem

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(kNearestItem)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// FindKNearest returns the k nodes nearest to query, in ascending distance.
// If the tree holds fewer than k points, all of them are returned. k <= 0
// returns an empty result. Complexity: O(log N * log k) expected.
func (t *Tree) FindKNearest(query lvcluster.Point, k int) ([]Neighbor, error) {
	if err := t.checkDim(query); err != nil {
		return nil, err
	}
	if t.Len() == 0 || k <= 0 {
		return nil, nil
	}

	h := &maxHeap{}
	heap.Init(h)

	worst := func() float64 {
		if h.Len() < k {
			return math.Inf(1)
		}

		return (*h)[0].dist
	}

	t.walkPruned(t.root, query, func(idx int, d float64) {
		if h.Len() < k {
			heap.Push(h, kNearestItem{idx: idx, dist: d})
		} else if d < (*h)[0].dist {
			heap.Pop(h)
			heap.Push(h, kNearestItem{idx: idx, dist: d})
		}
	}, worst)

	items := make([]kNearestItem, len(*h))
	copy(items, *h)
	sortByDist(items)

	out := make([]Neighbor, len(items))
	for i, it := range items {
		out[i] = t.toNeighbor(it.idx, it.dist)
	}

	return out, nil
}

// sortByDist insertion-sorts items by ascending distance; k is expected to
// be small (k-nearest-neighbor counts), so this beats sort.Slice's overhead.
func sortByDist(items []kNearestItem) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j].dist < items[j-1].dist; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}
