package seqcluster

import (
	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/metric"
)

// BSAS performs single-pass Basic Sequential Algorithmic Scheme clustering.
// The first point seeds cluster 0 as its own representative. Each
// subsequent point joins the cluster of its nearest representative unless
// that distance exceeds threshold and fewer than maxClusters clusters are
// open, in which case it seeds a new cluster instead.
//
// Returns lvcluster.ErrEmptyDataset, ErrInvalidThreshold (threshold <= 0),
// or ErrInvalidMaxClusters (maxClusters <= 0).
func BSAS(dataset lvcluster.Dataset, threshold float64, maxClusters int, opts ...Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if threshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	if maxClusters <= 0 {
		return nil, ErrInvalidMaxClusters
	}

	cfg := resolveConfig(opts)

	reps := []lvcluster.Point{clonePoint(dataset[0])}
	assign := make([]int, len(dataset))

	for i := 1; i < len(dataset); i++ {
		idx, dist, err := nearestRepresentative(dataset[i], reps, cfg.metric)
		if err != nil {
			return nil, err
		}

		if dist > threshold && len(reps) < maxClusters {
			reps = append(reps, clonePoint(dataset[i]))
			assign[i] = len(reps) - 1
		} else {
			assign[i] = idx
			updateRepresentative(reps, idx, dataset[i])
		}
	}

	return &Result{
		Clusters:        clustersFromAssign(assign, len(reps)),
		Representatives: reps,
	}, nil
}

func resolveConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.metric == nil {
		cfg.metric = metric.Euclidean()
	}

	return cfg
}
