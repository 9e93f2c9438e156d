// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures.
//   • Keep all data finite so the numeric policy never interferes by accident.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strided/matrix"
	"github.com/katalvlaran/strided/stride"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustDenseFrom WRAPS data as an r×c *Dense or fails the test.
func MustDenseFrom(t testing.TB, r, c int, data []float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data, opts...)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// seq returns [1, 2, ..., n] as float64, handy for row-major fixtures.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

// collect copies a view for comparisons.
func collect(v stride.View[float64]) []float64 { return v.Collect() }
