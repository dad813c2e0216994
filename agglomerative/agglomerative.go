package agglomerative

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/metric"
)

// Result is the outcome of Run.
type Result struct {
	Clusters lvcluster.ClusterSet
}

type hcCluster struct {
	id          int
	points      []int
	mean        lvcluster.Point
	nearestID   int
	nearestDist float64
}

// Run performs agglomerative clustering: starting from singleton
// clusters, repeatedly merges the pair of live clusters with minimum
// inter-cluster distance under linkage until k clusters remain.
//
// Returns lvcluster.ErrEmptyDataset, lvcluster.ErrInvalidK, or
// ErrInvalidLinkage.
func Run(dataset lvcluster.Dataset, k int, linkage Linkage, opts ...Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if err := lvcluster.ValidateK(k, len(dataset)); err != nil {
		return nil, err
	}
	if linkage != SingleLinkage && linkage != CentroidLinkage {
		return nil, ErrInvalidLinkage
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.metric == nil {
		cfg.metric = metric.Euclidean()
	}

	live := make(map[int]*hcCluster, len(dataset))
	for i, p := range dataset {
		live[i] = &hcCluster{id: i, points: []int{i}, mean: append(lvcluster.Point(nil), p...)}
	}
	nextID := len(dataset)

	pq := &hcHeap{}
	heap.Init(pq)
	for _, c := range live {
		refreshNearest(c, live, dataset, linkage, cfg.metric)
		heap.Push(pq, hcHeapItem{id: c.id, dist: c.nearestDist})
	}

	for len(live) > k {
		var c *hcCluster
		for pq.Len() > 0 {
			item := heap.Pop(pq).(hcHeapItem)
			candidate, ok := live[item.id]
			if !ok || candidate.nearestDist != item.dist {
				continue
			}
			c = candidate
			break
		}
		if c == nil {
			break
		}

		partner, ok := live[c.nearestID]
		if !ok {
			refreshNearest(c, live, dataset, linkage, cfg.metric)
			heap.Push(pq, hcHeapItem{id: c.id, dist: c.nearestDist})
			continue
		}

		merged := mergeClusters(c, partner, nextID)
		nextID++
		delete(live, c.id)
		delete(live, partner.id)
		live[merged.id] = merged

		for _, other := range live {
			if other.id == merged.id {
				continue
			}
			if other.nearestID == c.id || other.nearestID == partner.id {
				refreshNearest(other, live, dataset, linkage, cfg.metric)
			} else if d := interClusterDistance(other, merged, dataset, linkage, cfg.metric); d < other.nearestDist {
				other.nearestDist = d
				other.nearestID = merged.id
			}
			heap.Push(pq, hcHeapItem{id: other.id, dist: other.nearestDist})
		}
		refreshNearest(merged, live, dataset, linkage, cfg.metric)
		heap.Push(pq, hcHeapItem{id: merged.id, dist: merged.nearestDist})
	}

	clusters := make(lvcluster.ClusterSet, 0, len(live))
	for _, c := range live {
		sorted := append([]int(nil), c.points...)
		sortInts(sorted)
		clusters = append(clusters, lvcluster.Cluster(sorted))
	}

	return &Result{Clusters: clusters}, nil
}

func refreshNearest(c *hcCluster, live map[int]*hcCluster, dataset lvcluster.Dataset, linkage Linkage, m metric.Metric) {
	c.nearestID = -1
	c.nearestDist = math.Inf(1)
	for _, other := range live {
		if other.id == c.id {
			continue
		}
		if d := interClusterDistance(c, other, dataset, linkage, m); d < c.nearestDist {
			c.nearestDist = d
			c.nearestID = other.id
		}
	}
}

func interClusterDistance(a, b *hcCluster, dataset lvcluster.Dataset, linkage Linkage, m metric.Metric) float64 {
	if linkage == CentroidLinkage {
		d, err := m(a.mean, b.mean)
		if err != nil {
			return math.Inf(1)
		}

		return d
	}

	best := math.Inf(1)
	for _, pi := range a.points {
		for _, pj := range b.points {
			d, err := m(dataset[pi], dataset[pj])
			if err != nil {
				continue
			}
			if d < best {
				best = d
			}
		}
	}

	return best
}

func mergeClusters(a, b *hcCluster, id int) *hcCluster {
	points := append(append([]int(nil), a.points...), b.points...)

	dim := len(a.mean)
	mean := make(lvcluster.Point, dim)
	na, nb := float64(len(a.points)), float64(len(b.points))
	total := na + nb
	for d := 0; d < dim; d++ {
		mean[d] = (na*a.mean[d] + nb*b.mean[d]) / total
	}

	return &hcCluster{id: id, points: points, mean: mean}
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

type hcHeapItem struct {
	id   int
	dist float64
}

// hcHeap is a lazy-deletion min-heap matching the idiom established by
// optics.seedHeap and cure.cureHeap in this module.
type hcHeap []hcHeapItem

func (h hcHeap) Len() int            { return len(h) }
func (h hcHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h hcHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *hcHeap) Push(x interface{}) { *h = append(*h, x.(hcHeapItem)) }
func (h *hcHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
