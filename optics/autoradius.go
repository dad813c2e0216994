package optics

const defaultAutoRadiusIterations = 100

// AutoRadius searches, by binary search over [0, epsMax], for a radius
// whose reachability-plot local-maxima count (the peaks ExtractClusters
// would open new clusters at) equals targetClusters. maxIterations bounds
// the search; a non-positive value uses the default budget of 100.
//
// It returns the closest candidate radius found within the budget — an
// exact match is not guaranteed, since local-maxima count is not strictly
// monotone in eps for every ordering — along with the cluster count that
// radius actually produces.
//
// Returns ErrInvalidTargetClusters (targetClusters <= 0) or ErrInvalidEps
// (epsMax <= 0).
func AutoRadius(ordering []OrderEntry, targetClusters int, epsMax float64, maxIterations int) (eps float64, achievedClusters int, err error) {
	if targetClusters <= 0 {
		return 0, 0, ErrInvalidTargetClusters
	}
	if epsMax <= 0 {
		return 0, 0, ErrInvalidEps
	}
	if maxIterations <= 0 {
		maxIterations = defaultAutoRadiusIterations
	}

	lo, hi := 0.0, epsMax
	best := epsMax
	bestCount := localMaximaCount(ordering, epsMax)
	bestDiff := absInt(bestCount - targetClusters)

	for i := 0; i < maxIterations && bestDiff != 0; i++ {
		mid := lo + (hi-lo)/2
		count := localMaximaCount(ordering, mid)
		if diff := absInt(count - targetClusters); diff < bestDiff {
			bestDiff, best, bestCount = diff, mid, count
		}

		switch {
		case count == targetClusters:
			return mid, count, nil
		case count < targetClusters:
			hi = mid // fewer maxima than wanted: shrink eps to expose more peaks
		default:
			lo = mid // too many maxima: grow eps to merge some away
		}
	}

	return best, bestCount, nil
}

// localMaximaCount counts ordering positions whose reachability exceeds
// eps and is not exceeded by either neighbor in the ordering sequence —
// the peaks above eps in the reachability plot, each of which
// ExtractClusters would open a new cluster at.
func localMaximaCount(ordering []OrderEntry, eps float64) int {
	count := 0
	for i, e := range ordering {
		if e.Reachability <= eps {
			continue
		}
		if i > 0 && ordering[i-1].Reachability > e.Reachability {
			continue
		}
		if i < len(ordering)-1 && ordering[i+1].Reachability > e.Reachability {
			continue
		}
		count++
	}

	return count
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
