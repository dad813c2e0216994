package optics

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/kdtree"
)

// OrderEntry is one point's position in an OPTICS ordering: its core
// distance (the distance to its minPts-th neighbor within eps, or
// +Inf if fewer than minPts points lie within eps) and its reachability
// distance (the max of its predecessor's core distance and the distance
// between them, or +Inf for a point that opens a new run because nothing
// queued it).
type OrderEntry struct {
	Index        int
	CoreDistance float64
	Reachability float64
}

// Result is the outcome of Run: the dataset's points in OPTICS visiting
// order.
type Result struct {
	Ordering []OrderEntry
}

// Run computes the OPTICS ordering of dataset using a k-d tree for eps
// radius neighborhood queries.
//
// Returns lvcluster.ErrEmptyDataset, ErrInvalidEps (eps <= 0), or
// ErrInvalidMinPts (minPts <= 0).
func Run(dataset lvcluster.Dataset, eps float64, minPts int) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if eps <= 0 {
		return nil, ErrInvalidEps
	}
	if minPts <= 0 {
		return nil, ErrInvalidMinPts
	}

	tree, err := kdtree.Build([]lvcluster.Point(dataset), nil)
	if err != nil {
		return nil, err
	}

	n := len(dataset)
	processed := make([]bool, n)
	reach := make([]float64, n)
	core := make([]float64, n)
	for i := range reach {
		reach[i] = math.Inf(1)
	}

	ordering := make([]OrderEntry, 0, n)

	regionAndCore := func(p int) ([]kdtree.Neighbor, float64) {
		neighbors, _ := tree.FindNearestNodes(dataset[p], eps)
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].Distance < neighbors[j].Distance })
		if len(neighbors) < minPts {
			return neighbors, math.Inf(1)
		}

		return neighbors, math.Sqrt(neighbors[minPts-1].Distance)
	}

	seeds := &seedHeap{}
	updateSeeds := func(p int, coreP float64, neighbors []kdtree.Neighbor) {
		for _, nb := range neighbors {
			o := nb.Index
			if o == p || processed[o] {
				continue
			}
			newReach := math.Max(coreP, math.Sqrt(nb.Distance))
			if newReach < reach[o] {
				reach[o] = newReach
				heap.Push(seeds, seedItem{idx: o, reach: newReach})
			}
		}
	}

	for p := 0; p < n; p++ {
		if processed[p] {
			continue
		}
		processed[p] = true

		neighbors, coreP := regionAndCore(p)
		core[p] = coreP
		ordering = append(ordering, OrderEntry{Index: p, CoreDistance: coreP, Reachability: reach[p]})

		if math.IsInf(coreP, 1) {
			continue
		}

		*seeds = (*seeds)[:0]
		heap.Init(seeds)
		updateSeeds(p, coreP, neighbors)

		for seeds.Len() > 0 {
			item := heap.Pop(seeds).(seedItem)
			q := item.idx
			if processed[q] || item.reach != reach[q] {
				continue // stale entry from a since-improved reachability
			}
			processed[q] = true

			qNeighbors, coreQ := regionAndCore(q)
			core[q] = coreQ
			ordering = append(ordering, OrderEntry{Index: q, CoreDistance: coreQ, Reachability: reach[q]})

			if !math.IsInf(coreQ, 1) {
				updateSeeds(q, coreQ, qNeighbors)
			}
		}
	}

	return &Result{Ordering: ordering}, nil
}

type seedItem struct {
	idx   int
	reach float64
}

// seedHeap is a min-heap over seedItem.reach with lazy deletion: updateSeeds
// pushes a fresh entry instead of decreasing a key in place, and stale
// entries are dropped on pop by comparing against the live reach[] value.
type seedHeap []seedItem

func (h seedHeap) Len() int            { return len(h) }
func (h seedHeap) Less(i, j int) bool  { return h[i].reach < h[j].reach }
func (h seedHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *seedHeap) Push(x interface{}) { *h = append(*h, x.(seedItem)) }
func (h *seedHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
