// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every method returns one of these sentinels (or a stride sentinel when the
// underlying buffer is lent), wrapped with method context. Callers match
// with errors.Is. Panics are reserved for nonsensical option values.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping. Methods
// wrap with fmt.Errorf("Dense.Method(args): %w", ErrX); errors.Is still
// matches.

var (
	// ErrInvalidDimensions is returned when rows or cols is not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row, column or element index is outside
	// the matrix. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy
	// requires finite values (NewDenseFrom, Set, Apply).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDimensionMismatch indicates that supplied data does not match the
	// requested shape (len(data) != rows*cols).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
