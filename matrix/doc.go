// SPDX-License-Identifier: MIT

// Package matrix provides a row-major float64 matrix that lends strided
// views of its rows, columns and diagonal.
//
// A Dense owns one flat buffer of length rows*cols; element (i,j) lives at
// offset i*cols + j. Every line through that buffer is a strided view:
//
//	row i     : offset i*cols, length cols, stride 1
//	column j  : offset j,      length rows, stride cols
//	diagonal  : offset 0,      length min(rows,cols), stride cols+1
//
// Read views (Row, Col, Diag) are cheap stride.View values that observe the
// buffer. Mutable views are scoped: RowMut, ColMut, DiagMut, RowsMut and
// ColsMut lend *stride.Mutable handles to a callback and reclaim them on
// return. While a mutable view is lent, the Dense itself refuses access
// (At, Set, Do, Apply, Clone fail with stride.ErrBorrowed), so a column
// handle can never be written behind a row read.
//
// Numeric policy:
//   - By default Set, Apply and NewDenseFrom reject NaN and ±Inf with
//     ErrNaNInf. WithNoValidateNaNInf relaxes this per matrix.
//   - Writes through lent stride handles bypass the policy; callers that
//     lend mutable views own the values they store.
//
// Complexity quicksheet:
//   - NewDense O(r*c) zero-init; NewDenseFrom O(r*c) validation, no copy.
//   - At/Set O(1); Row/Col/Diag O(1); *Mut lenders O(1) + callback
//     (RowsMut/ColsMut allocate O(r) / O(c) handles).
//   - Clone/String/Do/Apply O(r*c).
package matrix
