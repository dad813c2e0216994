package invariants

import (
	"testing"

	"github.com/katalvlaran/lvcluster"
)

func TestAssertPartitionAcceptsValidPartition(t *testing.T) {
	clusters := lvcluster.ClusterSet{{0, 1}, {2, 3, 4}}
	AssertPartition(t, clusters, 5)
}

func TestAssertCoverageWithNoiseAcceptsValidSplit(t *testing.T) {
	clusters := lvcluster.ClusterSet{{0, 1}}
	noise := []int{2, 3}
	AssertCoverageWithNoise(t, clusters, noise, 4)
}
