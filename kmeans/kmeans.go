package kmeans

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/kdtree"
	"github.com/katalvlaran/lvcluster/metric"
	"github.com/katalvlaran/lvcluster/workerpool"
)

// Snapshot captures one iteration's centers and cluster assignment for an
// observer-enabled Run.
type Snapshot struct {
	Centers  []lvcluster.Point
	Clusters lvcluster.ClusterSet
}

// Result is the outcome of a Run.
type Result struct {
	Clusters lvcluster.ClusterSet
	Centers  []lvcluster.Point
	WCE      float64
	// Iterations is the number of assign/recompute iterations actually run.
	Iterations int
	// EmptyClusters holds the indices (into Centers) of clusters that had
	// no members in the final iteration; their center was kept unchanged
	// rather than split.
	EmptyClusters []int
	// Evolution is nil unless WithObserver was passed.
	Evolution []Snapshot
}

// Run partitions dataset into len(initialCenters) clusters via K-Means:
// repeated nearest-center assignment and component-wise mean recentering,
// stopping when the maximum per-center displacement (measured in the
// configured metric) drops to or below tolerance, or when maxIter
// iterations have run.
//
// Returns lvcluster.ErrEmptyDataset, lvcluster.ErrInvalidK, an
// ErrCentersDimensionMismatch if any initial center's arity differs from
// the dataset's, or lvcluster.ErrInvalidParameter if tolerance <= 0 or
// maxIter <= 0.
func Run(dataset lvcluster.Dataset, initialCenters []lvcluster.Point, tolerance float64, maxIter int, opts ...Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	k := len(initialCenters)
	if err := lvcluster.ValidateK(k, len(dataset)); err != nil {
		return nil, err
	}
	dim := dataset.Dim()
	for i, c := range initialCenters {
		if len(c) != dim {
			return nil, fmt.Errorf("kmeans: center %d has dimension %d, want %d: %w", i, len(c), dim, ErrCentersDimensionMismatch)
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
	var emptyClusters []int
	var evolution []Snapshot

	iter := 0
	for ; iter < maxIter; iter++ {
		if err := assignPoints(dataset, centers, assign, cfg); err != nil {
			return nil, err
		}

		newCenters, counts := recomputeCenters(dataset, assign, centers, dim)
		displacement, err := maxDisplacement(centers, newCenters, cfg.metric)
		if err != nil {
			return nil, err
		}
		centers = newCenters

		emptyClusters = emptyClusters[:0]
		for i, n := range counts {
			if n == 0 {
				emptyClusters = append(emptyClusters, i)
			}
		}

		if cfg.observer {
			evolution = append(evolution, Snapshot{
				Centers:  clonePoints(centers),
				Clusters: buildClusters(assign, k),
			})
		}

		if displacement <= tolerance {
			iter++ // count the converging iteration too

			break
		}
	}

	// A final assignment pass under the converged (or iteration-capped)
	// centers keeps the reported cluster sequence consistent with the
	// reported centers — the last loop iteration's assignment was made
	// against the centers *before* their final update.
	if err := assignPoints(dataset, centers, assign, cfg); err != nil {
		return nil, err
	}
	clusters := buildClusters(assign, k)
	wce, err := computeWCE(dataset, assign, centers, cfg.metric)
	if err != nil {
		return nil, err
	}

	return &Result{
		Clusters:      clusters,
		Centers:       centers,
		WCE:           wce,
		Iterations:    iter,
		EmptyClusters: append([]int(nil), emptyClusters...),
		Evolution:     evolution,
	}, nil
}

// assignPoints writes, into assign, the index of each dataset point's
// nearest center under cfg.metric. When cfg.useTree, a k-d tree is built
// over centers and queried with k=1; otherwise every point is scanned
// against every center directly.
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

// recomputeCenters returns, for each center index, the component-wise mean
// of its assigned members (or the unchanged previous center if it has no
// members), plus the per-center member counts.
func recomputeCenters(dataset lvcluster.Dataset, assign []int, prev []lvcluster.Point, dim int) ([]lvcluster.Point, []int) {
	k := len(prev)
	sums := make([]lvcluster.Point, k)
	counts := make([]int, k)
	for i := range sums {
		sums[i] = make(lvcluster.Point, dim)
	}
	for i, a := range assign {
		counts[a]++
		for d := 0; d < dim; d++ {
			sums[a][d] += dataset[i][d]
		}
	}

	out := make([]lvcluster.Point, k)
	for i := range out {
		if counts[i] == 0 {
			out[i] = clonePoint(prev[i])

			continue
		}
		p := make(lvcluster.Point, dim)
		for d := 0; d < dim; d++ {
			p[d] = sums[i][d] / float64(counts[i])
		}
		out[i] = p
	}

	return out, counts
}

// maxDisplacement returns the largest m(a[i], b[i]) over matching indices.
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

// buildClusters buckets assign into k clusters in center order, omitting
// any cluster with no members.
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

// computeWCE returns the within-cluster sum of errors: sum over points of
// the metric distance to their assigned center.
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

func clonePoint(p lvcluster.Point) lvcluster.Point {
	return append(lvcluster.Point(nil), p...)
}

func clonePoints(pts []lvcluster.Point) []lvcluster.Point {
	out := make([]lvcluster.Point, len(pts))
	for i, p := range pts {
		out[i] = clonePoint(p)
	}

	return out
}
