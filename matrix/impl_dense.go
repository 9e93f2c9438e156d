// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Route every element access through one root stride handle so that a
//     lent mutable view and a direct access can never overlap.
//   - Guarantee safety at the public surface: methods return errors instead
//     of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single
//     source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/String/Do/Apply: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/strided/stride"
)

// ---------- error context tags ----------

const (
	ctxNewFrom = "NewDenseFrom" // ctor tag
	ctxAt      = "At"           // method tag used in error wrappers
	ctxSet     = "Set"          // method tag used in error wrappers
	ctxApply   = "Apply"        // method tag used in error wrappers
	ctxDo      = "Do"           // method tag used in error wrappers
	ctxClone   = "Clone"        // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtBorrowed = "<borrowed>\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - root is the single mutable handle over data; all element access goes
//     through it, and it is the handle lent by the *Mut methods.
//   - validateNaNInf enables NaN/Inf rejection in Set/Apply (see options.go).
type Dense struct {
	r, c           int
	data           []float64
	root           *stride.Mutable[float64]
	validateNaNInf bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and wrap it in the root handle.
//   - Stage 3: resolve numeric policy from opts.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}

	return wrapDense(rows, cols, make([]float64, rows*cols), gatherOptions(opts...)), nil
}

// NewDenseFrom wraps caller-owned row-major data as an r×c matrix, no copy.
// MAIN DESCRIPTION:
//   - Adopt an existing buffer; later writes through the Dense are visible
//     in data and vice versa.
//
// Implementation:
//   - Stage 1: validate shape and len(data)==rows*cols.
//   - Stage 2: when the policy is on, reject the first non-finite value.
//   - Stage 3: wrap data in the root handle.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (with the
//     (row,col) of the first offending value).
//
// Complexity:
//   - Time O(r*c) when validating, O(1) otherwise; Space O(1).
//
// AI-Hints:
//   - The caller must not mutate data concurrently with Dense methods; the
//     exclusivity check covers access through the Dense only.
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len(data)=%d: %w", ctxNewFrom, rows, cols, len(data), ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if k, err := validateFinite(data); err != nil {
			return nil, fmt.Errorf("%s(%d,%d): at (%d,%d): %w", ctxNewFrom, rows, cols, k/cols, k%cols, err)
		}
	}

	return wrapDense(rows, cols, data, o), nil
}

func wrapDense(rows, cols int, data []float64, o Options) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           data,
		root:           stride.FromSliceMut(data),
		validateNaNInf: o.validateNaNInf,
	}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bound-checks (row,col) and returns the row-major offset.
// Returns the bare sentinel; public methods wrap with context.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if err := validateRow(m, row); err != nil {
		return 0, err
	}
	if err := validateCol(m, col); err != nil {
		return 0, err
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: shared read through the root handle.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
//   - stride.ErrBorrowed while a mutable view is lent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	x, err := m.root.At(off)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return x, nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: exclusive write through the root handle.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//   - stride.ErrBorrowed while a mutable view is lent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	if err = m.root.Set(off, v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Implementation:
//   - Stage 1: demote the root handle to a read view for the duration of the copy.
//   - Stage 2: wrap the copy in a fresh Dense.
//
// Errors:
//   - stride.ErrBorrowed while a mutable view is lent.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() (*Dense, error) {
	var cp []float64
	if err := m.root.WithReadOnly(func(v stride.View[float64]) { cp = v.Collect() }); err != nil {
		return nil, denseErrorf(ctxClone, m.r, m.c, err)
	}

	return wrapDense(m.r, m.c, cp, Options{validateNaNInf: m.validateNaNInf}), nil
}

// String renders matrix rows as lines with comma-separated values.
// Intended for debugging; prints "<borrowed>" while a mutable view is lent.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	err := m.root.WithReadOnly(func(v stride.View[float64]) {
		var i, j int
		for i = 0; i < m.r; i++ {
			b.WriteString(_fmtRowOpen)
			for j = 0; j < m.c; j++ {
				fmt.Fprintf(&b, "%g", v.Index(i*m.c+j))
				if j+1 < m.c {
					b.WriteString(_fmtSep)
				}
			}
			b.WriteString(_fmtRowClose)
		}
	})
	if err != nil {
		return _fmtBorrowed
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Implementation:
//   - Stage 1: demote the root handle to a read view (shared access).
//   - Stage 2: walk the view, deriving (i,j) from the flat index.
//
// Errors:
//   - stride.ErrBorrowed while a mutable view is lent.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Calling Set from inside f fails with stride.ErrBorrowed; collect
//     updates and apply them after Do returns, or use Apply.
func (m *Dense) Do(f func(i, j int, v float64) bool) error {
	err := m.root.WithReadOnly(func(v stride.View[float64]) {
		for k, x := range v.All() {
			if !f(k/m.c, k%m.c, x) {
				return
			}
		}
	})
	if err != nil {
		return denseErrorf(ctxDo, m.r, m.c, err)
	}

	return nil
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Implementation:
//   - Stage 1: take exclusive access via ForEachMut on the root handle.
//   - Stage 2: compute the new value; reject NaN/Inf if policy enabled.
//   - Stage 3: write back through the element pointer.
//
// Behavior highlights:
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value (policy ON), with (i,j).
//   - stride.ErrBorrowed while a mutable view is lent.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var bad error
	err := m.root.ForEachMut(func(k int, p *float64) bool {
		i, j := k/m.c, k%m.c
		nv := f(i, j, *p)
		if m.validateNaNInf && isNonFinite(nv) {
			bad = denseErrorf(ctxApply, i, j, ErrNaNInf)
			return false
		}
		*p = nv
		return true
	})
	if err != nil {
		return denseErrorf(ctxApply, m.r, m.c, err)
	}

	return bad
}
