package kmedians

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/kdtree"
	"github.com/katalvlaran/lvcluster/metric"
	"github.com/katalvlaran/lvcluster/workerpool"
)

// Result is the outcome of a Run. Unlike kmeans.Result, Centers may be
// shorter than the initial center count: a center whose cluster emptied
// out is dropped rather than retained.
type Result struct {
	Clusters   lvcluster.ClusterSet
	Centers    []lvcluster.Point
	WCE        float64
	Iterations int
}

// Run partitions dataset into up to len(initialCenters) clusters via
// K-Medians: repeated nearest-center assignment and component-wise median
// recentering (odd member count: sorted middle element per dimension; even
// count: mean of the two middles), stopping when the maximum surviving
// center's displacement drops to or below tolerance or maxIter iterations
// have run. A center whose cluster has no members after an iteration is
// dropped, not retained.
//
// Returns lvcluster.ErrEmptyDataset, lvcluster.ErrInvalidK,
// ErrCentersDimensionMismatch, or lvcluster.ErrInvalidParameter.
func Run(dataset lvcluster.Dataset, initialCenters []lvcluster.Point, tolerance float64, maxIter int, opts ...Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if err := lvcluster.ValidateK(len(initialCenters), len(dataset)); err != nil {
		return nil, err
	}
	dim := dataset.Dim()
	for i, c := range initialCenters {
		if len(c) != dim {
			return nil, fmt.Errorf("kmedians: center %d has dimension %d, want %d: %w", i, len(c), dim, ErrCentersDimensionMismatch)
		}
	}
	if tolerance <= 0 || maxIter <= 0 {
		return nil, lvcluster.ErrInvalidParameter
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.metric == nil {
		cfg.metric = metric.EuclideanSquared()
	}

	centers := clonePoints(initialCenters)
	assign := make([]int, len(dataset))

	iter := 0
	for ; iter < maxIter && len(centers) > 0; iter++ {
		if err := assignPoints(dataset, centers, assign, cfg); err != nil {
			return nil, err
		}

		medians, counts := recomputeMedians(dataset, assign, len(centers), dim)
		survivors, oldToNew := dropEmpty(centers, medians, counts)
		remapAssign(assign, oldToNew)

		displacement, err := maxDisplacement(survivorsBefore(centers, oldToNew), survivors, cfg.metric)
		if err != nil {
			return nil, err
		}
		centers = survivors
		if displacement <= tolerance {
			break
		}
	}

	if len(centers) > 0 {
		if err := assignPoints(dataset, centers, assign, cfg); err != nil {
			return nil, err
		}
	}
	clusters := buildClusters(assign, len(centers))
	wce, err := computeWCE(dataset, assign, centers, cfg.metric)
	if err != nil {
		return nil, err
	}

	return &Result{Clusters: clusters, Centers: centers, WCE: wce, Iterations: iter}, nil
}

func assignPoints(dataset lvcluster.Dataset, centers []lvcluster.Point, assign []int, cfg config) error {
	var tree *kdtree.Tree
	if cfg.useTree {
		t, err := kdtree.Build(centers, nil)
		if err != nil {
			return err
		}
		tree = t
	}

	assignOne := func(i int) error {
		if tree != nil {
			neighbors, err := tree.FindKNearest(dataset[i], 1)
			if err != nil {
				return err
			}
			assign[i] = neighbors[0].Index

			return nil
		}

		best, bestDist := -1, 0.0
		for j, c := range centers {
			d, err := cfg.metric(dataset[i], c)
			if err != nil {
				return err
			}
			if best == -1 || d < bestDist {
				best, bestDist = j, d
			}
		}
		assign[i] = best

		return nil
	}

	if cfg.pool == nil {
		for i := range dataset {
			if err := assignOne(i); err != nil {
				return err
			}
		}

		return nil
	}

	var mu sync.Mutex
	var firstErr error
	workerpool.ParallelFor(cfg.pool, len(dataset), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if err := assignOne(i); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()

				return
			}
		}
	})

	return firstErr
}

// recomputeMedians returns, for each of k clusters, the component-wise
// median of its members (nil if empty) and the member counts.
func recomputeMedians(dataset lvcluster.Dataset, assign []int, k, dim int) ([]lvcluster.Point, []int) {
	members := make([][]int, k)
	for i, a := range assign {
		members[a] = append(members[a], i)
	}

	out := make([]lvcluster.Point, k)
	counts := make([]int, k)
	coords := make([]float64, 0, len(dataset))
	for c := 0; c < k; c++ {
		counts[c] = len(members[c])
		if counts[c] == 0 {
			continue
		}
		p := make(lvcluster.Point, dim)
		for d := 0; d < dim; d++ {
			coords = coords[:0]
			for _, idx := range members[c] {
				coords = append(coords, dataset[idx][d])
			}
			sort.Float64s(coords)
			n := len(coords)
			if n%2 == 1 {
				p[d] = coords[n/2]
			} else {
				p[d] = (coords[n/2-1] + coords[n/2]) / 2
			}
		}
		out[c] = p
	}

	return out, counts
}

// dropEmpty returns the subset of medians whose count is nonzero, plus a
// map from old center index to new index (-1 if dropped).
func dropEmpty(centers, medians []lvcluster.Point, counts []int) ([]lvcluster.Point, []int) {
	oldToNew := make([]int, len(centers))
	survivors := make([]lvcluster.Point, 0, len(centers))
	for i, c := range counts {
		if c == 0 {
			oldToNew[i] = -1

			continue
		}
		oldToNew[i] = len(survivors)
		survivors = append(survivors, medians[i])
	}

	return survivors, oldToNew
}

// survivorsBefore returns the pre-update center values corresponding to the
// surviving (non-dropped) indices in oldToNew, for displacement comparison.
func survivorsBefore(centers []lvcluster.Point, oldToNew []int) []lvcluster.Point {
	out := make([]lvcluster.Point, 0, len(centers))
	for i, n := range oldToNew {
		if n >= 0 {
			out = append(out, centers[i])
		}
	}

	return out
}

// remapAssign rewrites assign in place from old center indices to new ones.
// Every value in assign is guaranteed to map to a surviving index, since a
// dropped center by definition has no members.
func remapAssign(assign []int, oldToNew []int) {
	for i, a := range assign {
		assign[i] = oldToNew[a]
	}
}

func maxDisplacement(a, b []lvcluster.Point, m metric.Metric) (float64, error) {
	var max float64
	for i := range a {
		d, err := m(a[i], b[i])
		if err != nil {
			return 0, err
		}
		if d > max {
			max = d
		}
	}

	return max, nil
}

func buildClusters(assign []int, k int) lvcluster.ClusterSet {
	buckets := make([]lvcluster.Cluster, k)
	for i, a := range assign {
		buckets[a] = append(buckets[a], i)
	}

	out := make(lvcluster.ClusterSet, 0, k)
	for _, b := range buckets {
		if len(b) > 0 {
			out = append(out, b)
		}
	}

	return out
}

func computeWCE(dataset lvcluster.Dataset, assign []int, centers []lvcluster.Point, m metric.Metric) (float64, error) {
	var total float64
	for i, a := range assign {
		d, err := m(dataset[i], centers[a])
		if err != nil {
			return 0, err
		}
		total += d
	}

	return total, nil
}

func clonePoints(pts []lvcluster.Point) []lvcluster.Point {
	out := make([]lvcluster.Point, len(pts))
	for i, p := range pts {
		out[i] = append(lvcluster.Point(nil), p...)
	}

	return out
}
