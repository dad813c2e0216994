package agglomerative

import "github.com/katalvlaran/lvcluster/metric"

// Linkage selects how inter-cluster distance is measured.
type Linkage int

const (
	// SingleLinkage measures inter-cluster distance as the minimum
	// pairwise distance between any member of one cluster and any member
	// of the other ("nearest neighbor" linkage).
	SingleLinkage Linkage = iota

	// CentroidLinkage measures inter-cluster distance as the distance
	// between the two clusters' centroids (mean points).
	CentroidLinkage
)

// Option mutates a config. Applied in order; last-writer-wins.
type Option func(*config)

type config struct {
	metric metric.Metric // nil means "use the package default"
}

func defaultConfig() config {
	return config{}
}

// WithMetric overrides the distance used between points/centroids. The
// package default is metric.Euclidean.
func WithMetric(m metric.Metric) Option {
	return func(c *config) { c.metric = m }
}
