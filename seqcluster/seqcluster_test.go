package seqcluster

import (
	"testing"

	"github.com/katalvlaran/lvcluster"
	"github.com/stretchr/testify/require"
)

func TestBSASBasicPartition(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {0}, {0}, {60}, {2}}

	result, err := BSAS(dataset, 10, 2)
	require.NoError(t, err)
	require.Len(t, result.Representatives, 2)
	require.Equal(t, lvcluster.ClusterSet{{0, 1, 2, 4}, {3}}, result.Clusters)
}

// TestBSASRepresentativeUpdateDividesByTotalClusterCount pins down the
// documented running-mean quirk: the divisor is the number of currently
// open clusters, not the member count of the cluster being updated.
func TestBSASRepresentativeUpdateDividesByTotalClusterCount(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {0}, {0}, {60}, {2}}

	result, err := BSAS(dataset, 10, 2)
	require.NoError(t, err)

	// A size-weighted mean of cluster 0's members (0,0,0,2) would be 0.5.
	// The preserved rule divides by len(representatives)==2 instead,
	// giving 1.0.
	require.InDelta(t, 1.0, result.Representatives[0][0], 1e-9)
}

func TestBSASOpensNewClusterPastThreshold(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {10}, {20}}

	result, err := BSAS(dataset, 1, 3)
	require.NoError(t, err)
	require.Len(t, result.Representatives, 3)
}

func TestBSASRespectsMaxClusters(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {100}, {200}, {300}}

	result, err := BSAS(dataset, 1, 2)
	require.NoError(t, err)
	require.Len(t, result.Representatives, 2)
}

func TestBSASValidation(t *testing.T) {
	_, err := BSAS(nil, 1, 2)
	require.ErrorIs(t, err, lvcluster.ErrEmptyDataset)

	_, err = BSAS(lvcluster.Dataset{{0}}, 0, 2)
	require.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = BSAS(lvcluster.Dataset{{0}}, 1, 0)
	require.ErrorIs(t, err, ErrInvalidMaxClusters)
}

func TestMBSASSeedsAreFixedUntilPassTwo(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {0}, {50}}

	result, err := MBSAS(dataset, 10, 2)
	require.NoError(t, err)
	require.Len(t, result.Representatives, 2)
	require.Equal(t, lvcluster.ClusterSet{{0, 1}, {2}}, result.Clusters)
}

func TestMBSASValidation(t *testing.T) {
	_, err := MBSAS(nil, 1, 2)
	require.ErrorIs(t, err, lvcluster.ErrEmptyDataset)

	_, err = MBSAS(lvcluster.Dataset{{0}}, -1, 2)
	require.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = MBSAS(lvcluster.Dataset{{0}}, 1, -1)
	require.ErrorIs(t, err, ErrInvalidMaxClusters)
}

func TestTTSASSingleScanConvergence(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {0}, {100}}

	result, err := TTSAS(dataset, 1, 50)
	require.NoError(t, err)
	require.Equal(t, lvcluster.ClusterSet{{0, 1}, {2}}, result.Clusters)
	require.Len(t, result.Representatives, 2)
}

// TestTTSASForcesProgressOnDeferredPoint exercises the documented quirk
// where a point stuck between threshold1 and threshold2 (deferred forever
// by ordinary comparisons) is eventually force-allocated once a whole scan
// produces no change, guaranteeing the algorithm terminates.
func TestTTSASForcesProgressOnDeferredPoint(t *testing.T) {
	dataset := lvcluster.Dataset{{0}, {30}, {100}}

	result, err := TTSAS(dataset, 5, 40)
	require.NoError(t, err)

	// Point 1 (value 30) is 30 from its nearest representative (point 0)
	// on every scan, strictly between both thresholds, until it is finally
	// force-opened as its own cluster.
	require.Len(t, result.Representatives, 3)
	require.Equal(t, lvcluster.ClusterSet{{0}, {2}, {1}}, result.Clusters)
}

func TestTTSASValidation(t *testing.T) {
	_, err := TTSAS(nil, 1, 2)
	require.ErrorIs(t, err, lvcluster.ErrEmptyDataset)

	_, err = TTSAS(lvcluster.Dataset{{0}}, 0, 2)
	require.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = TTSAS(lvcluster.Dataset{{0}}, 5, 5)
	require.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = TTSAS(lvcluster.Dataset{{0}}, 5, 1)
	require.ErrorIs(t, err, ErrInvalidThreshold)
}
