package cure

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/metric"
)

// Result is the outcome of Run.
type Result struct {
	Clusters        lvcluster.ClusterSet
	Representatives [][]lvcluster.Point
}

// cureCluster is one live cluster during the merge loop.
type cureCluster struct {
	id          int
	points      []int
	mean        lvcluster.Point
	reps        []lvcluster.Point
	nearestID   int
	nearestDist float64
}

// Run performs CURE clustering: starting from singleton clusters, it
// repeatedly merges the nearest pair (minimum distance between any pair of
// representatives) until k clusters remain, recomputing the merged
// cluster's mean, representatives and nearest-neighbor pointer, and
// invalidating/refreshing any other cluster whose own nearest neighbor was
// just merged away.
//
// Returns lvcluster.ErrEmptyDataset, lvcluster.ErrInvalidK,
// ErrInvalidRepresentatives (r <= 0), or ErrInvalidShrink (alpha outside
// [0, 1]).
func Run(dataset lvcluster.Dataset, k, r int, alpha float64, opts ...Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if err := lvcluster.ValidateK(k, len(dataset)); err != nil {
		return nil, err
	}
	if r <= 0 {
		return nil, ErrInvalidRepresentatives
	}
	if alpha < 0 || alpha > 1 {
		return nil, ErrInvalidShrink
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.metric == nil {
		cfg.metric = metric.Euclidean()
	}

	live := make(map[int]*cureCluster, len(dataset))
	nextID := len(dataset)
	for i, p := range dataset {
		c := &cureCluster{
			id:     i,
			points: []int{i},
			mean:   append(lvcluster.Point(nil), p...),
			reps:   []lvcluster.Point{append(lvcluster.Point(nil), p...)},
		}
		live[i] = c
	}

	pq := &cureHeap{}
	heap.Init(pq)
	for _, c := range live {
		refreshNearest(c, live, cfg.metric)
		heap.Push(pq, cureHeapItem{id: c.id, dist: c.nearestDist})
	}

	for len(live) > k {
		var c *cureCluster
		for pq.Len() > 0 {
			item := heap.Pop(pq).(cureHeapItem)
			candidate, ok := live[item.id]
			if !ok || candidate.nearestDist != item.dist {
				continue // stale: cluster gone or its nearest since changed
			}
			c = candidate
			break
		}
		if c == nil {
			break // no mergeable pair remains (should not happen while len(live) > 1)
		}

		partner, ok := live[c.nearestID]
		if !ok {
			refreshNearest(c, live, cfg.metric)
			heap.Push(pq, cureHeapItem{id: c.id, dist: c.nearestDist})
			continue
		}

		merged := mergeClusters(c, partner, dataset, r, alpha, cfg.metric, nextID)
		nextID++
		delete(live, c.id)
		delete(live, partner.id)
		live[merged.id] = merged

		for _, other := range live {
			if other.id == merged.id {
				continue
			}
			if other.nearestID == c.id || other.nearestID == partner.id {
				refreshNearest(other, live, cfg.metric)
			} else if d := clusterDistance(other, merged, cfg.metric); d < other.nearestDist {
				other.nearestDist = d
				other.nearestID = merged.id
			}
			heap.Push(pq, cureHeapItem{id: other.id, dist: other.nearestDist})
		}
		refreshNearest(merged, live, cfg.metric)
		heap.Push(pq, cureHeapItem{id: merged.id, dist: merged.nearestDist})
	}

	clusters := make(lvcluster.ClusterSet, 0, len(live))
	reps := make([][]lvcluster.Point, 0, len(live))
	for _, c := range live {
		sorted := append([]int(nil), c.points...)
		sortInts(sorted)
		clusters = append(clusters, lvcluster.Cluster(sorted))
		reps = append(reps, c.reps)
	}

	return &Result{Clusters: clusters, Representatives: reps}, nil
}

// refreshNearest recomputes c's nearest-live-cluster pointer by scanning
// every other live cluster.
func refreshNearest(c *cureCluster, live map[int]*cureCluster, m metric.Metric) {
	c.nearestID = -1
	c.nearestDist = math.Inf(1)
	for _, other := range live {
		if other.id == c.id {
			continue
		}
		if d := clusterDistance(c, other, m); d < c.nearestDist {
			c.nearestDist = d
			c.nearestID = other.id
		}
	}
}

// clusterDistance is the minimum distance between any pair of
// representatives across a and b.
func clusterDistance(a, b *cureCluster, m metric.Metric) float64 {
	best := math.Inf(1)
	for _, ra := range a.reps {
		for _, rb := range b.reps {
			d, err := m(ra, rb)
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

// mergeClusters combines a and b into a new cluster: the size-weighted
// mean, up to r representatives chosen by farthest-first greedy selection
// among the merged member points and shrunk toward the new mean by alpha.
func mergeClusters(a, b *cureCluster, dataset lvcluster.Dataset, r int, alpha float64, m metric.Metric, id int) *cureCluster {
	points := append(append([]int(nil), a.points...), b.points...)

	dim := dataset.Dim()
	mean := make(lvcluster.Point, dim)
	na, nb := float64(len(a.points)), float64(len(b.points))
	total := na + nb
	for d := 0; d < dim; d++ {
		mean[d] = (na*a.mean[d] + nb*b.mean[d]) / total
	}

	reps := selectRepresentatives(dataset, points, mean, r, alpha, m)

	return &cureCluster{id: id, points: points, mean: mean, reps: reps}
}

// selectRepresentatives picks up to r member points by farthest-first
// greedy (max-min) selection from mean, then shrinks each chosen point
// toward mean by alpha.
func selectRepresentatives(dataset lvcluster.Dataset, pointIdx []int, mean lvcluster.Point, r int, alpha float64, m metric.Metric) []lvcluster.Point {
	if len(pointIdx) <= r {
		reps := make([]lvcluster.Point, len(pointIdx))
		for i, idx := range pointIdx {
			reps[i] = shrinkToward(dataset[idx], mean, alpha)
		}

		return reps
	}

	chosenIdx := make([]int, 0, r)
	taken := make(map[int]bool, r)

	first, bestDist := -1, -1.0
	for _, idx := range pointIdx {
		d, _ := m(dataset[idx], mean)
		if d > bestDist {
			bestDist, first = d, idx
		}
	}
	chosenIdx = append(chosenIdx, first)
	taken[first] = true

	for len(chosenIdx) < r {
		best, bestMinDist := -1, -1.0
		for _, idx := range pointIdx {
			if taken[idx] {
				continue
			}
			minDist := math.Inf(1)
			for _, c := range chosenIdx {
				d, _ := m(dataset[idx], dataset[c])
				if d < minDist {
					minDist = d
				}
			}
			if minDist > bestMinDist {
				bestMinDist, best = minDist, idx
			}
		}
		chosenIdx = append(chosenIdx, best)
		taken[best] = true
	}

	reps := make([]lvcluster.Point, len(chosenIdx))
	for i, idx := range chosenIdx {
		reps[i] = shrinkToward(dataset[idx], mean, alpha)
	}

	return reps
}

func shrinkToward(p, mean lvcluster.Point, alpha float64) lvcluster.Point {
	out := make(lvcluster.Point, len(p))
	for d := range p {
		out[d] = p[d] + alpha*(mean[d]-p[d])
	}

	return out
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

type cureHeapItem struct {
	id   int
	dist float64
}

// cureHeap is a min-heap over cureHeapItem.dist with the same
// lazy-deletion convention as optics' seedHeap: stale entries (referring
// to a merged-away cluster or a cluster whose nearest pointer has since
// changed) are dropped on pop.
type cureHeap []cureHeapItem

func (h cureHeap) Len() int            { return len(h) }
func (h cureHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h cureHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cureHeap) Push(x interface{}) { *h = append(*h, x.(cureHeapItem)) }
func (h *cureHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
