package lvcluster

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDataset checks that d is non-empty, every Point is non-empty, and
// every Point shares the same arity. Complexity: O(N*d).
func ValidateDataset(d Dataset) error {
	if len(d) == 0 {
		return validatorErrorf("ValidateDataset", ErrEmptyDataset)
	}

	dim := len(d[0])
	if dim == 0 {
		return validatorErrorf("ValidateDataset", ErrEmptyPoint)
	}

	for i, p := range d {
		if len(p) != dim {
			return validatorErrorf("ValidateDataset",
				fmt.Errorf("point %d has dimension %d, want %d: %w", i, len(p), dim, ErrInconsistentDimension))
		}
	}

	return nil
}

// ValidateK checks that 0 < k <= n. Complexity: O(1).
func ValidateK(k, n int) error {
	if k <= 0 || k > n {
		return validatorErrorf("ValidateK", fmt.Errorf("k=%d, n=%d: %w", k, n, ErrInvalidK))
	}

	return nil
}

// ValidateDistanceMatrix checks that m is square, symmetric within eps, has
// a zero diagonal, and has no negative entries. Complexity: O(n^2).
func ValidateDistanceMatrix(m DistanceMatrix, eps float64) error {
	n := len(m)
	if n == 0 {
		return validatorErrorf("ValidateDistanceMatrix", ErrEmptyDataset)
	}

	for i, row := range m {
		if len(row) != n {
			return validatorErrorf("ValidateDistanceMatrix",
				fmt.Errorf("row %d has length %d, want %d: %w", i, len(row), n, ErrMalformedDistanceMatrix))
		}
	}

	for i := 0; i < n; i++ {
		if m[i][i] < -eps || m[i][i] > eps {
			return validatorErrorf("ValidateDistanceMatrix",
				fmt.Errorf("diagonal[%d]=%g not zero: %w", i, m[i][i], ErrMalformedDistanceMatrix))
		}
		for j := i + 1; j < n; j++ {
			if m[i][j] < 0 {
				return validatorErrorf("ValidateDistanceMatrix",
					fmt.Errorf("negative entry at (%d,%d): %w", i, j, ErrMalformedDistanceMatrix))
			}
			diff := m[i][j] - m[j][i]
			if diff < -eps || diff > eps {
				return validatorErrorf("ValidateDistanceMatrix",
					fmt.Errorf("asymmetric entry (%d,%d)=%g vs (%d,%d)=%g: %w", i, j, m[i][j], j, i, m[j][i], ErrMalformedDistanceMatrix))
			}
		}
	}

	return nil
}

// ValidateIndices checks that every index in idx lies in [0, n).
// Complexity: O(len(idx)).
func ValidateIndices(idx []int, n int) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return validatorErrorf("ValidateIndices", fmt.Errorf("index %d, n=%d: %w", i, n, ErrIndexOutOfRange))
		}
	}

	return nil
}
