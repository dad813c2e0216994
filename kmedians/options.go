package kmedians

import (
	"github.com/katalvlaran/lvcluster/metric"
	"github.com/katalvlaran/lvcluster/workerpool"
)

// Option mutates a config. Applied in order; last-writer-wins.
type Option func(*config)

type config struct {
	metric  metric.Metric // nil means "use the package default"
	useTree bool
	pool    *workerpool.Pool
}

func defaultConfig() config {
	return config{useTree: true}
}

// WithMetric overrides the distance metric used for assignment and WCE. As
// in package kmeans, the k-d tree acceleration only applies under the
// package default (squared Euclidean).
func WithMetric(m metric.Metric) Option {
	return func(c *config) {
		c.metric = m
		c.useTree = false
	}
}

// WithPool runs the per-point assignment step across p via
// workerpool.ParallelFor instead of sequentially.
func WithPool(p *workerpool.Pool) Option {
	return func(c *config) { c.pool = p }
}
