package seqcluster

import "github.com/katalvlaran/lvcluster/metric"

// Option mutates a config. Applied in order; last-writer-wins.
type Option func(*config)

type config struct {
	metric metric.Metric // nil means "use the package default"
}

func defaultConfig() config {
	return config{}
}

// WithMetric overrides the distance used for the threshold comparisons and
// representative-nearest search. The package default is metric.Euclidean,
// matching the source library's default distance metric: thresholds are
// compared against the true distance, not a squared proxy.
func WithMetric(m metric.Metric) Option {
	return func(c *config) { c.metric = m }
}
