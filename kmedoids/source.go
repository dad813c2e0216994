package kmedoids

import (
	"github.com/katalvlaran/lvcluster"
	"github.com/katalvlaran/lvcluster/metric"
)

// Source is the common dissimilarity interface PAM operates over, letting
// it run identically against raw points or a precomputed distance matrix.
type Source interface {
	// Size returns the number of items.
	Size() int
	// Dist returns the dissimilarity between items i and j.
	Dist(i, j int) (float64, error)
}

type pointsSource struct {
	dataset lvcluster.Dataset
	metric  metric.Metric
}

func (s pointsSource) Size() int { return len(s.dataset) }
func (s pointsSource) Dist(i, j int) (float64, error) {
	return s.metric(s.dataset[i], s.dataset[j])
}

// FromPoints builds a Source over dataset using m (nil selects
// metric.EuclideanSquared). Returns lvcluster.ErrEmptyDataset if dataset is
// empty.
func FromPoints(dataset lvcluster.Dataset, m metric.Metric) (Source, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if m == nil {
		m = metric.EuclideanSquared()
	}

	return pointsSource{dataset: dataset, metric: m}, nil
}

type matrixSource struct {
	m lvcluster.DistanceMatrix
}

func (s matrixSource) Size() int { return s.m.Size() }
func (s matrixSource) Dist(i, j int) (float64, error) {
	return s.m[i][j], nil
}

// FromDistanceMatrix builds a Source directly over a precomputed distance
// matrix. Returns lvcluster.ErrMalformedDistanceMatrix if m fails
// lvcluster.ValidateDistanceMatrix.
func FromDistanceMatrix(m lvcluster.DistanceMatrix) (Source, error) {
	if err := lvcluster.ValidateDistanceMatrix(m, 1e-9); err != nil {
		return nil, err
	}

	return matrixSource{m: m}, nil
}
