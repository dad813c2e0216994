package kmeans

import (
	"github.com/katalvlaran/lvcluster/metric"
	"github.com/katalvlaran/lvcluster/workerpool"
)

// Option mutates a config. Applied in order; last-writer-wins.
type Option func(*config)

type config struct {
	metric   metric.Metric // nil means "use the package default"
	useTree  bool          // true iff the k-d tree acceleration applies
	pool     *workerpool.Pool
	observer bool
}

func defaultConfig() config {
	return config{useTree: true}
}

// WithMetric overrides the distance metric used for assignment and WCE.
// The k-d tree acceleration in the assignment step only applies under the
// package default (squared Euclidean); any explicit metric falls back to a
// brute-force nearest-center scan, since the tree's internal pruning is
// hard-wired to squared Euclidean distance (see package kdtree).
func WithMetric(m metric.Metric) Option {
	return func(c *config) {
		c.metric = m
		c.useTree = false
	}
}

// WithPool runs the per-point assignment step across p via
// workerpool.ParallelFor instead of sequentially. A nil pool (the default)
// runs assignment on the calling goroutine.
func WithPool(p *workerpool.Pool) Option {
	return func(c *config) { c.pool = p }
}

// WithObserver records the centers and cluster assignment produced by every
// iteration into Result.Evolution.
func WithObserver() Option {
	return func(c *config) { c.observer = true }
}
