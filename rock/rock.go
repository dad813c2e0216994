package rock

import (
	"math"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/adjacency"
	"github.com/katalvlaran/lvcluster/metric"
)

// Result is the outcome of Run.
type Result struct {
	Clusters lvcluster.ClusterSet
}

// Run performs ROCK clustering: build a theta-radius neighbor adjacency,
// then repeatedly merge the pair of live clusters with maximum goodness
// (link count normalized by cluster size) until k clusters remain or no
// pair shares a positive link count.
//
// Returns lvcluster.ErrEmptyDataset, lvcluster.ErrInvalidK, or
// ErrInvalidTheta.
func Run(dataset lvcluster.Dataset, theta float64, k int, opts ...Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if err := lvcluster.ValidateK(k, len(dataset)); err != nil {
		return nil, err
	}
	if theta <= 0 || theta >= 1 {
		return nil, ErrInvalidTheta
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.metric == nil {
		cfg.metric = metric.Euclidean()
	}

	n := len(dataset)
	adj, err := adjacency.NewBitMatrix(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, derr := cfg.metric(dataset[i], dataset[j])
			if derr != nil {
				return nil, derr
			}
			if d < theta {
				if serr := adjacency.SetSymmetric(adj, i, j); serr != nil {
					return nil, serr
				}
			}
		}
	}

	f := (1 - theta) / (1 + theta)
	exponent := 1 + 2*f

	live := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		live[i] = []int{i}
	}
	nextID := n

	for len(live) > k {
		bestI, bestJ := -1, -1
		bestGoodness := math.Inf(-1)
		bestLinks := 0

		ids := make([]int, 0, len(live))
		for id := range live {
			ids = append(ids, id)
		}
		for a := 0; a < len(ids); a++ {
			for b := a + 1; b < len(ids); b++ {
				ci, cj := live[ids[a]], live[ids[b]]
				links := countLinks(ci, cj, adj)
				if links == 0 {
					continue
				}
				g := goodness(links, len(ci), len(cj), exponent)
				if g > bestGoodness {
					bestGoodness, bestI, bestJ, bestLinks = g, ids[a], ids[b], links
				}
			}
		}

		if bestI == -1 || bestLinks == 0 {
			break // no merge yields a positive link count
		}

		merged := append(append([]int(nil), live[bestI]...), live[bestJ]...)
		delete(live, bestI)
		delete(live, bestJ)
		live[nextID] = merged
		nextID++
	}

	clusters := make(lvcluster.ClusterSet, 0, len(live))
	for _, members := range live {
		sorted := append([]int(nil), members...)
		sortInts(sorted)
		clusters = append(clusters, lvcluster.Cluster(sorted))
	}

	return &Result{Clusters: clusters}, nil
}

// countLinks sums, over every cross pair (p in ci, q in cj), the number
// of points that are neighbors of both p and q.
func countLinks(ci, cj []int, adj *adjacency.BitMatrix) int {
	total := 0
	for _, p := range ci {
		pn := neighborSet(adj, p)
		for _, q := range cj {
			for r := range pn {
				if adj.Has(q, r) {
					total++
				}
			}
		}
	}

	return total
}

func neighborSet(adj *adjacency.BitMatrix, p int) map[int]bool {
	set := make(map[int]bool)
	for _, nb := range adj.Neighbors(p) {
		set[nb] = true
	}

	return set
}

// goodness normalizes a link count by how many links two clusters of
// these sizes would be expected to share if independently uniform, per
// the ROCK criterion.
func goodness(links, sizeI, sizeJ int, exponent float64) float64 {
	denom := math.Pow(float64(sizeI+sizeJ), exponent) - math.Pow(float64(sizeI), exponent) - math.Pow(float64(sizeJ), exponent)
	if denom <= 0 {
		return math.Inf(-1)
	}

	return float64(links) / denom
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
