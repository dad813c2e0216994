package seqcluster

import (
	"math"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/metric"
)

// Result is the outcome of BSAS, MBSAS or TTSAS.
type Result struct {
	Clusters        lvcluster.ClusterSet
	Representatives []lvcluster.Point
}

// nearestRepresentative returns the index of, and distance to, the
// representative closest to p. It returns (-1, math.Inf(1)) when reps is
// empty.
func nearestRepresentative(p lvcluster.Point, reps []lvcluster.Point, m metric.Metric) (int, float64, error) {
	best := -1
	bestDist := math.Inf(1)
	for i, r := range reps {
		d, err := m(p, r)
		if err != nil {
			return 0, 0, err
		}
		if d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best, bestDist, nil
}

// updateRepresentative folds p into reps[idx] with a running mean whose
// divisor is the *total* number of representatives, not the cardinality of
// cluster idx. This mirrors the source library's update_representative
// literally (see DESIGN.md): it is a documented, deliberately preserved
// quirk rather than a weighted-by-cluster-size mean.
func updateRepresentative(reps []lvcluster.Point, idx int, p lvcluster.Point) {
	rep := reps[idx]
	total := float64(len(reps))
	for d := range rep {
		rep[d] = ((total-1)*rep[d] + p[d]) / total
	}
}

func clonePoint(p lvcluster.Point) lvcluster.Point {
	return append(lvcluster.Point(nil), p...)
}

// clustersFromAssign groups point indices by their assigned representative
// index, in first-member-encountered cluster order, and drops clusters
// whose representative ended up with no members assigned.
func clustersFromAssign(assign []int, numReps int) lvcluster.ClusterSet {
	buckets := make([][]int, numReps)
	for i, c := range assign {
		buckets[c] = append(buckets[c], i)
	}

	out := make(lvcluster.ClusterSet, 0, numReps)
	for _, b := range buckets {
		if len(b) > 0 {
			out = append(out, lvcluster.Cluster(b))
		}
	}

	return out
}
