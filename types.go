package lvcluster

// Point is an ordered sequence of real-valued coordinates. All Points of a
// Dataset must share the same arity (dimension). An empty Point is invalid.
type Point []float64

// Dataset is an ordered sequence of Points with stable 0-based indices.
// Every Cluster member index produced against a Dataset satisfies
// 0 <= index < len(Dataset).
type Dataset []Point

// Dim returns the arity shared by every Point in d, or -1 if d is empty.
// It does not check that every Point actually shares that arity; use
// ValidateDataset for that.
func (d Dataset) Dim() int {
	if len(d) == 0 {
		return -1
	}

	return len(d[0])
}

// DistanceMatrix is a square, symmetric matrix of non-negative reals with a
// zero diagonal — an alternative representation of a Dataset for
// metric-free algorithms.
type DistanceMatrix [][]float64

// Size returns the number of rows (equivalently columns) of m.
func (m DistanceMatrix) Size() int {
	return len(m)
}

// Cluster is a non-empty ordered sequence of point indices, unique within a
// result.
type Cluster []int

// ClusterSet is an ordered sequence of Clusters.
type ClusterSet []Cluster

// Flatten returns the set of all indices across every cluster in cs, in
// cluster-then-member order. Duplicates across clusters indicate a broken
// disjointness invariant and are not deduplicated here — callers that need
// to verify disjointness should do so explicitly (see internal/invariants).
func (cs ClusterSet) Flatten() []int {
	out := make([]int, 0)
	for _, c := range cs {
		out = append(out, c...)
	}

	return out
}

// Membership is the Fuzzy C-Means N x k membership matrix: Membership[i][j]
// is the degree to which point i belongs to cluster j, in [0,1], with each
// row summing to 1.
type Membership [][]float64

// HardLabels collapses a Membership matrix to a hard assignment by taking,
// for each row, the column of maximum membership.
func (m Membership) HardLabels() []int {
	labels := make([]int, len(m))
	for i, row := range m {
		best := 0
		bestVal := -1.0
		for j, v := range row {
			if v > bestVal {
				bestVal = v
				best = j
			}
		}
		labels[i] = best
	}

	return labels
}
