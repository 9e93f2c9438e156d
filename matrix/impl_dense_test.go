// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/strided/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(math.MaxInt, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "r*c overflows")
}

// TestRowsColsShape verifies the dimension accessors.
func TestRowsColsShape(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestNewDenseFrom checks shape/length validation and no-copy adoption.
func TestNewDenseFrom(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 3, seq(5))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(0, 3, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	data := seq(6)
	m := MustDenseFrom(t, 2, 3, data)
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	require.NoError(t, m.Set(0, 1, 20))
	require.Equal(t, 20.0, data[1], "writes land in the caller's buffer")
}

// TestNewDenseFromNaNPolicy checks the first non-finite value is reported.
func TestNewDenseFromNaNPolicy(t *testing.T) {
	data := []float64{1, 2, 3, math.Inf(1)}
	_, err := matrix.NewDenseFrom(2, 2, data)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "at (1,1)")

	m, err := matrix.NewDenseFrom(2, 2, data, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "Dense.Set(2,0): matrix: index out of range")

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetNaNPolicy checks the per-matrix policy on Set.
func TestSetNaNPolicy(t *testing.T) {
	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	relaxed, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.NaN()))

	// last option wins
	again, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, again.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy with the same policy.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))
	require.NoError(t, m.Set(1, 1, 2.0))

	clone, err := m.Clone()
	require.NoError(t, err)
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)

	cv, err := clone.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, cv)

	require.NoError(t, clone.Set(0, 1, math.Inf(1)), "policy is preserved")
}

// TestStringOutput checks the row-wise dump.
func TestStringOutput(t *testing.T) {
	m := MustDenseFrom(t, 2, 2, []float64{1, 2, 3, 4.5})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

// TestDoVisitsRowMajor checks the visit order and the early stop.
func TestDoVisitsRowMajor(t *testing.T) {
	m := MustDenseFrom(t, 2, 3, seq(6))

	var got [][3]float64
	require.NoError(t, m.Do(func(i, j int, v float64) bool {
		got = append(got, [3]float64{float64(i), float64(j), v})
		return v < 4
	}))
	require.Equal(t, [][3]float64{
		{0, 0, 1}, {0, 1, 2}, {0, 2, 3}, {1, 0, 4},
	}, got)

	// reads nest inside Do
	require.NoError(t, m.Do(func(i, j int, v float64) bool {
		again, err := m.At(i, j)
		require.NoError(t, err)
		require.Equal(t, v, again)
		return true
	}))
}

// TestApply checks the in-place map and the NaN abort.
func TestApply(t *testing.T) {
	data := seq(4)
	m := MustDenseFrom(t, 2, 2, data)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v*10 + float64(i+j) }))
	require.Equal(t, []float64{10, 21, 31, 42}, data)

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 {
			return math.NaN()
		}
		return 0
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.EqualError(t, err, "Dense.Apply(1,0): matrix: NaN or Inf encountered")
	require.Equal(t, []float64{0, 0, 31, 42}, data, "cells before the error stay written")
}
