// SPDX-License-Identifier: MIT

// Package matrix - strided line views over Dense storage.
//
// Purpose:
//   - Expose rows, columns and the main diagonal as stride views without copying.
//   - Lend mutable line views only for the duration of a callback, through
//     the root handle, so Dense access and lent writes cannot interleave.
//
// Layout quicksheet (row-major, r×c):
//   - Row(i):  offset i*c, length c, stride 1.
//   - Col(j):  offset j,   length r, stride c.
//   - Diag():  offset 0,   length min(r,c), stride c+1.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/strided/stride"
)

const (
	ctxRow      = "Row"
	ctxCol      = "Col"
	ctxDiag     = "Diag"
	ctxWithRow  = "WithRow"
	ctxWithCol  = "WithCol"
	ctxWithDiag = "WithDiag"
	ctxRowMut   = "RowMut"
	ctxColMut   = "ColMut"
	ctxDiagMut  = "DiagMut"
	ctxRowsMut  = "RowsMut"
	ctxColsMut  = "ColsMut"
)

// lineErrorf wraps err with "Dense.<method>(idx)" or "Dense.<method>()".
func lineErrorf(method string, err error, idx ...int) error {
	if len(idx) == 0 {
		return fmt.Errorf("Dense.%s(): %w", method, err)
	}

	return fmt.Errorf("Dense.%s(%d): %w", method, idx[0], err)
}

// diagLen is the main diagonal length min(r,c).
func (m *Dense) diagLen() int { return min(m.r, m.c) }

// lineView derives a read view under a momentary shared borrow of the
// root handle, so no view can be created while a mutable view is lent.
func (m *Dense) lineView(off, n, step int) (stride.View[float64], error) {
	var (
		v    stride.View[float64]
		verr error
	)
	if err := m.root.WithReadOnly(func(stride.View[float64]) { v, verr = stride.New(m.data, off, n, step) }); err != nil {
		return stride.View[float64]{}, err
	}

	return v, verr
}

// Row returns a read view of row i.
// MAIN DESCRIPTION:
//   - Contiguous view over data[i*c : (i+1)*c].
//
// Behavior highlights:
//   - Creation is refused while a mutable view is lent.
//   - The returned view is a plain value and is not tracked afterwards;
//     use WithRow to keep lends out for as long as the view is read.
//
// Errors:
//   - ErrOutOfRange unless 0 <= i < Rows(); stride.ErrBorrowed during a lend.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) (stride.View[float64], error) {
	if err := validateRow(m, i); err != nil {
		return stride.View[float64]{}, lineErrorf(ctxRow, err, i)
	}
	v, err := m.lineView(i*m.c, m.c, 1)
	if err != nil {
		return stride.View[float64]{}, lineErrorf(ctxRow, err, i)
	}

	return v, nil
}

// Col returns a read view of column j (stride Cols()).
// Errors: ErrOutOfRange unless 0 <= j < Cols(); stride.ErrBorrowed during a lend.
// Complexity: O(1).
func (m *Dense) Col(j int) (stride.View[float64], error) {
	if err := validateCol(m, j); err != nil {
		return stride.View[float64]{}, lineErrorf(ctxCol, err, j)
	}
	v, err := m.lineView(j, m.r, m.c)
	if err != nil {
		return stride.View[float64]{}, lineErrorf(ctxCol, err, j)
	}

	return v, nil
}

// Diag returns an untracked read view of the main diagonal, length
// min(Rows(), Cols()). Prefer WithDiag when a lend may be live.
func (m *Dense) Diag() stride.View[float64] {
	v, err := stride.New(m.data, 0, m.diagLen(), m.c+1)
	if err != nil {
		// unreachable for a Dense built by NewDense/NewDenseFrom
		panic(lineErrorf(ctxDiag, err))
	}

	return v
}

// WithRow calls fn with a read view of row i while holding a shared
// borrow: reads (At, Do, other With*) nest, lends fail with stride.ErrBorrowed.
func (m *Dense) WithRow(i int, fn func(row stride.View[float64])) error {
	if err := validateRow(m, i); err != nil {
		return lineErrorf(ctxWithRow, err, i)
	}

	return m.withLine(ctxWithRow, i*m.c, m.c, 1, fn, i)
}

// WithCol is WithRow for column j.
func (m *Dense) WithCol(j int, fn func(col stride.View[float64])) error {
	if err := validateCol(m, j); err != nil {
		return lineErrorf(ctxWithCol, err, j)
	}

	return m.withLine(ctxWithCol, j, m.r, m.c, fn, j)
}

// WithDiag is WithRow for the main diagonal.
func (m *Dense) WithDiag(fn func(diag stride.View[float64])) error {
	return m.withLine(ctxWithDiag, 0, m.diagLen(), m.c+1, fn)
}

func (m *Dense) withLine(method string, off, n, step int, fn func(stride.View[float64]), idx ...int) error {
	var verr error
	err := m.root.WithReadOnly(func(stride.View[float64]) {
		var line stride.View[float64]
		if line, verr = stride.New(m.data, off, n, step); verr == nil {
			fn(line)
		}
	})
	if err == nil {
		err = verr
	}
	if err != nil {
		return lineErrorf(method, err, idx...)
	}

	return nil
}

// lend reborrows the root handle for fn and wraps any failure with method context.
func (m *Dense) lend(method string, fn func(tmp *stride.Mutable[float64]) error, idx ...int) error {
	if err := m.root.Reborrow(fn); err != nil {
		return lineErrorf(method, err, idx...)
	}

	return nil
}

// RowMut lends a mutable view of row i to fn.
// MAIN DESCRIPTION:
//   - Scoped write access to one row; the handle expires when fn returns.
//
// Implementation:
//   - Stage 1: bound-check i.
//   - Stage 2: reborrow the root handle and narrow it to the row.
//   - Stage 3: call fn; its error is returned wrapped.
//
// Behavior highlights:
//   - While fn runs, At/Set/Do/Apply/Clone on m fail with stride.ErrBorrowed.
//   - Using the handle after fn returns fails with stride.ErrExpired.
//   - Writes through the handle bypass the NaN/Inf policy.
//
// Errors:
//   - ErrOutOfRange; stride.ErrBorrowed when another view is lent; fn's error.
//
// Complexity:
//   - Time O(1) + fn, Space O(1).
func (m *Dense) RowMut(i int, fn func(row *stride.Mutable[float64]) error) error {
	if err := validateRow(m, i); err != nil {
		return lineErrorf(ctxRowMut, err, i)
	}

	return m.lend(ctxRowMut, func(tmp *stride.Mutable[float64]) error {
		row, err := tmp.Sub(i*m.c, (i+1)*m.c)
		if err != nil {
			return err
		}
		return fn(row)
	}, i)
}

// ColMut lends a mutable view of column j to fn.
// Same scoping and errors as RowMut.
func (m *Dense) ColMut(j int, fn func(col *stride.Mutable[float64]) error) error {
	if err := validateCol(m, j); err != nil {
		return lineErrorf(ctxColMut, err, j)
	}

	return m.lend(ctxColMut, func(tmp *stride.Mutable[float64]) error {
		tail, err := tmp.SubFrom(j)
		if err != nil {
			return err
		}
		col, err := tail.StepBy(m.c)
		if err != nil {
			return err
		}
		return fn(col)
	}, j)
}

// DiagMut lends a mutable view of the main diagonal to fn.
//
// Implementation:
//   - Stage 1: every (c+1)-th element starting at 0.
//   - Stage 2: trim to min(r,c); for tall matrices the stepped view runs
//     past the last diagonal cell.
func (m *Dense) DiagMut(fn func(diag *stride.Mutable[float64]) error) error {
	return m.lend(ctxDiagMut, func(tmp *stride.Mutable[float64]) error {
		stepped, err := tmp.StepBy(m.c + 1)
		if err != nil {
			return err
		}
		diag, err := stepped.SubTo(m.diagLen())
		if err != nil {
			return err
		}
		return fn(diag)
	})
}

// RowsMut lends every row at once as disjoint mutable views.
// MAIN DESCRIPTION:
//   - rows[i] covers row i; all handles may be used together (e.g. one per goroutine).
//
// Implementation:
//   - Stage 1: reborrow the root handle.
//   - Stage 2: peel rows off the front with SplitAt(c).
//
// Complexity:
//   - Time O(r) + fn, Space O(r).
func (m *Dense) RowsMut(fn func(rows []*stride.Mutable[float64]) error) error {
	return m.lend(ctxRowsMut, func(tmp *stride.Mutable[float64]) error {
		rows := make([]*stride.Mutable[float64], 0, m.r)
		rest := tmp
		for i := 0; i < m.r-1; i++ {
			row, tail, err := rest.SplitAt(m.c)
			if err != nil {
				return err
			}
			rows = append(rows, row)
			rest = tail
		}
		rows = append(rows, rest)
		return fn(rows)
	})
}

// ColsMut lends every column at once as disjoint mutable views;
// cols[j] has stride Cols().
// Complexity: O(c) + fn.
func (m *Dense) ColsMut(fn func(cols []*stride.Mutable[float64]) error) error {
	return m.lend(ctxColsMut, func(tmp *stride.Mutable[float64]) error {
		cols, err := tmp.Substrides(m.c)
		if err != nil {
			return err
		}
		return fn(cols)
	})
}
