package lvcluster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatasetDim(t *testing.T) {
	require.Equal(t, -1, Dataset{}.Dim())
	require.Equal(t, 2, Dataset{{1, 2}, {3, 4}}.Dim())
}

func TestClusterSetFlatten(t *testing.T) {
	cs := ClusterSet{{0, 1, 2}, {3, 4}}
	require.Equal(t, []int{0, 1, 2, 3, 4}, cs.Flatten())
}

func TestMembershipHardLabels(t *testing.T) {
	m := Membership{
		{0.9, 0.1},
		{0.2, 0.8},
	}
	require.Equal(t, []int{0, 1}, m.HardLabels())
}

func TestValidateDataset(t *testing.T) {
	require.ErrorIs(t, ValidateDataset(nil), ErrEmptyDataset)
	require.ErrorIs(t, ValidateDataset(Dataset{{}}), ErrEmptyPoint)
	require.ErrorIs(t, ValidateDataset(Dataset{{1, 2}, {1}}), ErrInconsistentDimension)
	require.NoError(t, ValidateDataset(Dataset{{1, 2}, {3, 4}}))
}

func TestValidateK(t *testing.T) {
	require.ErrorIs(t, ValidateK(0, 5), ErrInvalidK)
	require.ErrorIs(t, ValidateK(6, 5), ErrInvalidK)
	require.NoError(t, ValidateK(5, 5))
}

func TestValidateDistanceMatrix(t *testing.T) {
	good := DistanceMatrix{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	require.NoError(t, ValidateDistanceMatrix(good, 1e-9))

	asym := DistanceMatrix{
		{0, 1},
		{2, 0},
	}
	require.ErrorIs(t, ValidateDistanceMatrix(asym, 1e-9), ErrMalformedDistanceMatrix)
}
