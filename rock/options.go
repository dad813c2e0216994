package rock

import "github.com/katalvlaran/lvcluster/metric"

// Option mutates a config. Applied in order; last-writer-wins.
type Option func(*config)

type config struct {
	metric metric.Metric // nil means "use the package default"
}

func defaultConfig() config {
	return config{}
}

// WithMetric overrides the distance used to decide neighbor adjacency.
// The package default is metric.Euclidean.
func WithMetric(m metric.Metric) Option {
	return func(c *config) { c.metric = m }
}
