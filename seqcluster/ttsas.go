package seqcluster

import (
	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/metric"
)

// TTSAS performs Two-Threshold Sequential Algorithmic Scheme clustering.
// Every point starts "skipped". Each full scan, for every still-skipped
// point: if its distance to the nearest representative is <= threshold1 it
// joins that cluster; if > threshold2 it seeds a new cluster; otherwise it
// is deferred to the next scan. Scanning repeats until no skipped points
// remain or a scan makes no change, in which case the first remaining
// skipped point is force-allocated its own cluster to guarantee progress.
//
// This progress-forcing rule also fires before the very first scan (there
// are no prior changes to measure yet), so the first point is always
// force-allocated exactly as BSAS seeds cluster 0 with point 0 — preserved
// here because it is the documented behavior of the source algorithm, not
// an independent design choice.
//
// Returns lvcluster.ErrEmptyDataset, ErrInvalidThreshold (threshold1 <= 0
// or threshold2 <= threshold1).
func TTSAS(dataset lvcluster.Dataset, threshold1, threshold2 float64, opts ...Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if threshold1 <= 0 || threshold2 <= threshold1 {
		return nil, ErrInvalidThreshold
	}

	cfg := resolveConfig(opts)

	n := len(dataset)
	t := &ttsasState{
		dataset:    dataset,
		metric:     cfg.metric,
		skipped:    make([]bool, n),
		remaining:  n,
		threshold1: threshold1,
		threshold2: threshold2,
	}
	for i := range t.skipped {
		t.skipped[i] = true
	}

	changes := 0
	for t.remaining != 0 {
		before := t.remaining
		if err := t.processScan(changes); err != nil {
			return nil, err
		}
		changes = before - t.remaining
	}

	return &Result{Clusters: t.clusters, Representatives: t.reps}, nil
}

type ttsasState struct {
	dataset    lvcluster.Dataset
	metric     metric.Metric
	skipped    []bool
	start      int
	clusters   lvcluster.ClusterSet
	reps       []lvcluster.Point
	remaining  int
	threshold1 float64
	threshold2 float64
}

// processScan runs one left-to-right pass over the still-skipped points
// starting from the last-known first-skipped position, forcing an
// allocation first if the previous scan made no progress.
func (t *ttsasState) processScan(prevChanges int) error {
	for ; t.start < len(t.skipped); t.start++ {
		if t.skipped[t.start] {
			break
		}
	}

	if prevChanges == 0 && t.start < len(t.skipped) {
		t.allocate(t.start)
		t.start++
	}

	for i := t.start; i < len(t.skipped); i++ {
		if !t.skipped[i] {
			continue
		}

		idx, dist, err := nearestRepresentative(t.dataset[i], t.reps, t.metric)
		if err != nil {
			return err
		}

		switch {
		case dist <= t.threshold1:
			t.append(idx, i)
		case dist > t.threshold2:
			t.allocate(i)
		}
	}

	return nil
}

func (t *ttsasState) append(clusterIdx, pointIdx int) {
	t.clusters[clusterIdx] = append(t.clusters[clusterIdx], pointIdx)
	updateRepresentative(t.reps, clusterIdx, t.dataset[pointIdx])
	t.skipped[pointIdx] = false
	t.remaining--
}

func (t *ttsasState) allocate(pointIdx int) {
	t.clusters = append(t.clusters, lvcluster.Cluster{pointIdx})
	t.reps = append(t.reps, clonePoint(t.dataset[pointIdx]))
	t.skipped[pointIdx] = false
	t.remaining--
}
