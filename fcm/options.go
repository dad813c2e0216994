package fcm

import "github.com/katalvlaran/lvcluster/metric"

// Option mutates a config. Applied in order; last-writer-wins.
type Option func(*config)

type config struct {
	metric metric.Metric // nil means "use the package default"
}

func defaultConfig() config {
	return config{}
}

// WithMetric overrides the norm used in the membership and displacement
// formulas. The package default is metric.Euclidean (not the squared
// form): the membership update is a ratio of norms raised to an explicit
// exponent, so it needs the true distance, unlike the ordering-only
// accelerated algorithms elsewhere in this module.
func WithMetric(m metric.Metric) Option {
	return func(c *config) { c.metric = m }
}
