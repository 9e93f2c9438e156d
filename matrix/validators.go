// SPDX-License-Identifier: MIT
// Package matrix: centralized validators returning sentinel errors.
// Validators never wrap; callers attach Dense method context.

package matrix

import "math"

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// validateDims checks rows>0 && cols>0 and that rows*cols fits an int.
// Returns ErrInvalidDimensions otherwise.
// Complexity: O(1).
func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return ErrInvalidDimensions
	}

	return nil
}

// validateFinite scans data and returns the first non-finite offset with
// ErrNaNInf, or (-1, nil) when every value is finite.
// Complexity: O(len(data)).
func validateFinite(data []float64) (int, error) {
	for k, x := range data {
		if isNonFinite(x) {
			return k, ErrNaNInf
		}
	}

	return -1, nil
}

// validateRow and validateCol bound-check a line index.
func validateRow(m *Dense, i int) error {
	if i < 0 || i >= m.r {
		return ErrOutOfRange
	}

	return nil
}

func validateCol(m *Dense, j int) error {
	if j < 0 || j >= m.c {
		return ErrOutOfRange
	}

	return nil
}
