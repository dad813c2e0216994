package gmeans

import "github.com/katalvlaran/lvcluster/metric"

// Significance selects one of the Anderson-Darling test's five
// pre-computed critical values, from the smallest critical value (least
// willing to call a projection "normal", i.e. most willing to split) to the
// largest (most willing to call it normal, least willing to split).
type Significance int

const (
	Significance15Percent Significance = iota
	Significance10Percent
	Significance5Percent
	Significance2_5Percent
	Significance1Percent
)

// criticalValues holds the unadjusted Anderson-Darling critical values for
// the normal distribution with unknown mean and variance, indexed by
// Significance. Adjusted per sample size via adjustedCritical.
var criticalValues = [5]float64{0.576, 0.656, 0.787, 0.918, 1.092}

// Option mutates a config. Applied in order; last-writer-wins.
type Option func(*config)

type config struct {
	metric       metric.Metric
	significance Significance
}

func defaultConfig() config {
	return config{metric: metric.EuclideanSquared(), significance: Significance5Percent}
}

// WithMetric overrides the distance metric used for the internal 2-Means
// splits. Must be a squared-distance metric for the recentering math to
// behave the same way kmeans.Run expects; see xmeans.WithMetric for the
// same caveat.
func WithMetric(m metric.Metric) Option {
	return func(c *config) { c.metric = m }
}

// WithSignificance selects the Anderson-Darling critical value. The
// default, Significance5Percent, rejects normality (and so accepts a
// split) more readily than Significance1Percent.
func WithSignificance(s Significance) Option {
	return func(c *config) { c.significance = s }
}
