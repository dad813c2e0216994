package silhouette

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/internal/rng"
	"github.com/katalvlaran/lvcluster/metric"
)

// SearchResult is the outcome of SearchK.
type SearchResult struct {
	BestK     int
	BestScore float64
	// Scores holds the mean silhouette score for each k in [kmin, kmax),
	// in order; a k for which the clusterer produced fewer than k
	// clusters (or only 1) scores math.NaN().
	Scores []float64
}

// SearchK runs clusterer for every k in [kmin, kmax), scores each result
// with Score, and returns the k with the highest mean silhouette score.
// NaN-scored candidates are never selected as best.
//
// Returns lvcluster.ErrEmptyDataset or ErrInvalidKRange (kmin < 2,
// kmax <= kmin, or kmax-1 > len(dataset)).
func SearchK(dataset lvcluster.Dataset, kmin, kmax int, clusterer Clusterer, m metric.Metric, r *rand.Rand) (*SearchResult, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if kmin < 2 || kmax <= kmin || kmax-1 > len(dataset) {
		return nil, ErrInvalidKRange
	}

	base := rng.Or(r)
	scores := make([]float64, 0, kmax-kmin)
	bestK := -1
	bestScore := math.Inf(-1)

	for k := kmin; k < kmax; k++ {
		clusters, err := clusterer(dataset, k, rng.Derive(base, uint64(k)))
		if err != nil {
			return nil, err
		}

		score := math.NaN()
		if len(clusters) >= 2 && len(clusters) == k {
			perPoint, serr := Score(dataset, clusters, m)
			if serr != nil {
				return nil, serr
			}
			score = Mean(perPoint)
		}
		scores = append(scores, score)

		if !math.IsNaN(score) && score > bestScore {
			bestScore = score
			bestK = k
		}
	}

	if bestK == -1 {
		bestScore = math.NaN()
	}

	return &SearchResult{BestK: bestK, BestScore: bestScore, Scores: scores}, nil
}
