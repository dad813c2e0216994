// Package invariants provides shared partition-correctness assertions
// used by multiple algorithm packages' tests (coverage, disjointness,
// index validity) so each _test.go file doesn't re-implement the same
// bookkeeping loop.
package invariants

import (
	"testing"

	"github.com/katalvlaran/lvcluster"
)

// AssertPartition fails t if clusters is not a valid partition of [0, n):
// every index in [0, n) must appear in exactly one cluster, and every
// member index must lie in [0, n).
func AssertPartition(t *testing.T, clusters lvcluster.ClusterSet, n int) {
	t.Helper()

	seen := make([]bool, n)
	for ci, cluster := range clusters {
		for _, idx := range cluster {
			if idx < 0 || idx >= n {
				t.Fatalf("cluster %d: index %d out of range [0, %d)", ci, idx, n)
			}
			if seen[idx] {
				t.Fatalf("index %d assigned to more than one cluster", idx)
			}
			seen[idx] = true
		}
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d not covered by any cluster", i)
		}
	}
}

// AssertCoverageWithNoise is AssertPartition for algorithms that also
// report a noise set: every index in [0, n) must be in exactly one of
// clusters or noise, never both.
func AssertCoverageWithNoise(t *testing.T, clusters lvcluster.ClusterSet, noise []int, n int) {
	t.Helper()

	seen := make([]bool, n)
	for ci, cluster := range clusters {
		for _, idx := range cluster {
			if idx < 0 || idx >= n {
				t.Fatalf("cluster %d: index %d out of range [0, %d)", ci, idx, n)
			}
			if seen[idx] {
				t.Fatalf("index %d assigned to more than one cluster", idx)
			}
			seen[idx] = true
		}
	}
	for _, idx := range noise {
		if idx < 0 || idx >= n {
			t.Fatalf("noise: index %d out of range [0, %d)", idx, n)
		}
		if seen[idx] {
			t.Fatalf("index %d assigned to both a cluster and noise", idx)
		}
		seen[idx] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d not covered by any cluster or noise", i)
		}
	}
}
