package elbow

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/initcenters"
	"github.com/katalvlaran/lvcluster/internal/rng"
	"github.com/katalvlaran/lvcluster/kmeans"
	"github.com/katalvlaran/lvcluster/metric"
)

// Result is the outcome of Run.
type Result struct {
	// Ks holds every k tried, kmin..kmax inclusive, in order.
	Ks []int
	// WCE[i] is the within-cluster error of the K-Means run for Ks[i].
	WCE []float64
	// Distances[i] is Ks[i]/WCE[i]'s perpendicular distance to the
	// straight line through the range's two endpoints.
	Distances []float64
	// BestK is the Ks entry with maximum Distances value.
	BestK int
}

// Run performs the elbow method: K-Means for every k in [kmin, kmax]
// (seeded via k-means++, one independent RNG stream per k), scored by
// WCE, with the elbow chosen as the k of maximum perpendicular distance
// from the (k, WCE(k)) curve to the chord connecting its endpoints.
//
// Returns lvcluster.ErrEmptyDataset or ErrInvalidKRange (kmin < 1,
// kmax <= kmin, or kmax > len(dataset)).
func Run(dataset lvcluster.Dataset, kmin, kmax int, tolerance float64, maxIter int, r *rand.Rand, opts ...kmeans.Option) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if kmin < 1 || kmax <= kmin || kmax > len(dataset) {
		return nil, ErrInvalidKRange
	}

	base := rng.Or(r)
	ks := make([]int, 0, kmax-kmin+1)
	wce := make([]float64, 0, kmax-kmin+1)

	for k := kmin; k <= kmax; k++ {
		centers, err := initcenters.KMeansPP(dataset, k, metric.EuclideanSquared(), rng.Derive(base, uint64(k)))
		if err != nil {
			return nil, err
		}
		result, err := kmeans.Run(dataset, centers, tolerance, maxIter, opts...)
		if err != nil {
			return nil, err
		}
		ks = append(ks, k)
		wce = append(wce, result.WCE)
	}

	distances, bestIdx := chordDistances(ks, wce)

	return &Result{Ks: ks, WCE: wce, Distances: distances, BestK: ks[bestIdx]}, nil
}

// chordDistances computes, for every (ks[i], wce[i]) point, its
// perpendicular distance to the straight line through the first and last
// points, and returns the index of the maximum-distance point.
func chordDistances(ks []int, wce []float64) ([]float64, int) {
	x1, y1 := float64(ks[0]), wce[0]
	x2, y2 := float64(ks[len(ks)-1]), wce[len(wce)-1]
	lineLen := math.Hypot(y2-y1, x2-x1)

	distances := make([]float64, len(ks))
	bestIdx := 0
	bestDist := -1.0
	for i := range ks {
		x0, y0 := float64(ks[i]), wce[i]
		var d float64
		if lineLen == 0 {
			d = 0
		} else {
			d = math.Abs((y2-y1)*x0-(x2-x1)*y0+x2*y1-y2*x1) / lineLen
		}
		distances[i] = d
		if d > bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	return distances, bestIdx
}
