package optics

import "github.com/katalvlaran/lvcluster"

// ExtractClusters recovers a hard partition from an OPTICS ordering at a
// given radius: a new cluster opens at each upward step whose reachability
// exceeds eps provided the point's own core distance is within eps, and the
// current cluster continues for every point whose reachability is within
// eps; a point whose reachability and core distance both exceed eps is
// noise.
func ExtractClusters(ordering []OrderEntry, eps float64) (lvcluster.ClusterSet, []int) {
	var clusters lvcluster.ClusterSet
	var noise []int
	var current lvcluster.Cluster

	flush := func() {
		if len(current) > 0 {
			clusters = append(clusters, current)
			current = nil
		}
	}

	for _, e := range ordering {
		if e.Reachability <= eps {
			current = append(current, e.Index)
			continue
		}

		// Upward step above eps: either this point can seed a fresh
		// cluster (it is itself a core point within eps) or it is noise.
		flush()
		if e.CoreDistance <= eps {
			current = append(current, e.Index)
		} else {
			noise = append(noise, e.Index)
		}
	}
	flush()

	return clusters, noise
}
