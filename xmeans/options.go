package xmeans

import "github.com/katalvlaran/lvcluster/metric"

// Option mutates a config. Applied in order; last-writer-wins.
type Option func(*config)

type config struct {
	metric metric.Metric
}

func defaultConfig() config {
	return config{metric: metric.EuclideanSquared()}
}

// WithMetric overrides the distance metric used for the internal 2-Means
// splits and for the BIC variance estimate. It must be a squared-distance
// metric (the package default, metric.EuclideanSquared) for the BIC
// likelihood to be meaningful; supplying an unsquared metric skews the
// split-acceptance threshold but is not rejected, since the metric
// abstraction has no way to mark a Metric as "squared".
func WithMetric(m metric.Metric) Option {
	return func(c *config) { c.metric = m }
}
