package dbscan

import (
	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/kdtree"
)

// Result is the outcome of Run or RunDistanceMatrix.
type Result struct {
	Clusters lvcluster.ClusterSet
	Noise    []int
}

const unlabeled = -1

// Run performs DBSCAN over raw points, using a k-d tree for eps-radius
// neighborhood queries.
//
// Returns lvcluster.ErrEmptyDataset, ErrInvalidEps (eps <= 0), or
// ErrInvalidMinPts (minPts <= 0).
func Run(dataset lvcluster.Dataset, eps float64, minPts int) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if eps <= 0 {
		return nil, ErrInvalidEps
	}
	if minPts <= 0 {
		return nil, ErrInvalidMinPts
	}

	tree, err := kdtree.Build([]lvcluster.Point(dataset), nil)
	if err != nil {
		return nil, err
	}

	regionQuery := func(i int) []int {
		neighbors, _ := tree.FindNearestNodes(dataset[i], eps)
		out := make([]int, len(neighbors))
		for j, n := range neighbors {
			out[j] = n.Index
		}

		return out
	}

	return expand(len(dataset), regionQuery, minPts), nil
}

// RunDistanceMatrix performs DBSCAN over a precomputed DistanceMatrix, using
// a row scan for eps-radius neighborhood queries instead of a k-d tree.
//
// Returns lvcluster.ErrMalformedDistanceMatrix, ErrInvalidEps (eps <= 0), or
// ErrInvalidMinPts (minPts <= 0).
func RunDistanceMatrix(dm lvcluster.DistanceMatrix, eps float64, minPts int) (*Result, error) {
	if err := lvcluster.ValidateDistanceMatrix(dm, 1e-9); err != nil {
		return nil, err
	}
	if eps <= 0 {
		return nil, ErrInvalidEps
	}
	if minPts <= 0 {
		return nil, ErrInvalidMinPts
	}

	regionQuery := func(i int) []int {
		var out []int
		for j, d := range dm[i] {
			if d <= eps {
				out = append(out, j)
			}
		}

		return out
	}

	return expand(dm.Size(), regionQuery, minPts), nil
}

// expand runs the standard density-based expansion over n points using
// regionQuery(i) to retrieve i's eps-neighborhood (regionQuery's own index
// i is expected to be included, since every point is its own neighbor at
// distance 0).
func expand(n int, regionQuery func(i int) []int, minPts int) *Result {
	visited := make([]bool, n)
	label := make([]int, n)
	for i := range label {
		label[i] = unlabeled
	}

	clusterID := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := regionQuery(i)
		if len(neighbors) < minPts {
			continue // tentatively noise; may still be absorbed as a border point
		}

		expandCluster(i, neighbors, clusterID, label, visited, regionQuery, minPts)
		clusterID++
	}

	buckets := make([][]int, clusterID)
	var noise []int
	for i, c := range label {
		if c == unlabeled {
			noise = append(noise, i)
		} else {
			buckets[c] = append(buckets[c], i)
		}
	}

	clusters := make(lvcluster.ClusterSet, 0, clusterID)
	for _, b := range buckets {
		if len(b) > 0 {
			clusters = append(clusters, lvcluster.Cluster(b))
		}
	}

	return &Result{Clusters: clusters, Noise: noise}
}

// expandCluster transitively absorbs seed's eps-neighborhood into
// clusterID: a core neighbor (>= minPts neighbors of its own) extends the
// frontier; a non-core neighbor joins the cluster as a border point
// without contributing its own neighbors.
func expandCluster(seed int, neighbors []int, clusterID int, label []int, visited []bool, regionQuery func(i int) []int, minPts int) {
	label[seed] = clusterID

	queue := append([]int(nil), neighbors...)
	for idx := 0; idx < len(queue); idx++ {
		j := queue[idx]

		if !visited[j] {
			visited[j] = true
			jNeighbors := regionQuery(j)
			if len(jNeighbors) >= minPts {
				queue = append(queue, jNeighbors...)
			}
		}

		if label[j] == unlabeled {
			label[j] = clusterID
		}
	}
}
