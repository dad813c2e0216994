package seqcluster

import "github.com/katalvlaran/lvcluster"

// MBSAS performs two-pass Modified Basic Sequential Algorithmic Scheme
// clustering. Pass 1 opens representatives using the BSAS threshold rule
// but never assigns a point to an already-open cluster. Pass 2 assigns
// every non-seed point to its nearest representative (no threshold check)
// and folds it in with the running-mean update.
//
// Returns lvcluster.ErrEmptyDataset, ErrInvalidThreshold (threshold <= 0),
// or ErrInvalidMaxClusters (maxClusters <= 0).
func MBSAS(dataset lvcluster.Dataset, threshold float64, maxClusters int, opts ...Option) (*Result, error) {
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
	isSeed := make([]bool, len(dataset))
	isSeed[0] = true
	assign := make([]int, len(dataset))

	// Pass 1: open clusters only, never assign to an existing one.
	for i := 1; i < len(dataset); i++ {
		_, dist, err := nearestRepresentative(dataset[i], reps, cfg.metric)
		if err != nil {
			return nil, err
		}

		if dist > threshold && len(reps) < maxClusters {
			reps = append(reps, clonePoint(dataset[i]))
			isSeed[i] = true
			assign[i] = len(reps) - 1
		}
	}

	// Pass 2: assign every non-seed point to its nearest representative.
	for i := 0; i < len(dataset); i++ {
		if isSeed[i] {
			continue
		}

		idx, _, err := nearestRepresentative(dataset[i], reps, cfg.metric)
		if err != nil {
			return nil, err
		}

		assign[i] = idx
		updateRepresentative(reps, idx, dataset[i])
	}

	return &Result{
		Clusters:        clustersFromAssign(assign, len(reps)),
		Representatives: reps,
	}, nil
}
