// SPDX-License-Identifier: MIT

// Package stride - View: the shared, read-only strided view.
//
// Purpose:
//   - Slice-like ergonomics (At, Len, iteration, sub-slicing) over elements
//     that are stride apart in a caller-owned slice, without copying.
//   - Copyable value semantics: a copy of a View is another view over the
//     same memory.
//
// Complexity quicksheet:
//   - FromSlice/New/At/Sub/StepBy/Reversed/SplitAt: O(1).
//   - Substrides(k): O(k). Collect/All/Values/Backward: O(n).

package stride

import "iter"

// View is a read-only strided view over a caller-owned []T.
// The zero View is a valid empty view.
//
// The backing slice must outlive the view and must not be resized in a
// way that reallocates it while the view is in use; a View never owns or
// frees memory.
type View[T any] struct {
	buf []T    // backing storage, borrowed
	l   layout // validated against buf
}

// FromSlice wraps s as a stride-1 view in O(1). No data is copied.
func FromSlice[T any](s []T) View[T] {
	return View[T]{buf: s, l: layout{off: 0, n: len(s), stride: 1}}
}

// New returns the view of length elements of buf starting at buf[offset],
// stride elements apart. Stride may be negative.
// MAIN DESCRIPTION:
//   - Validated constructor for arbitrary strided layouts.
//
// Implementation:
//   - Stage 1: validate the layout against len(buf) (see validateLayout).
//   - Stage 2: return the view; nothing is copied.
//
// Errors:
//   - ErrInvalidRange when length < 0.
//   - ErrZeroStride when stride == 0 and length > 1.
//   - ErrOutOfRange when the first or last element falls outside buf.
//   - ErrStrideOverflow when the address arithmetic overflows int.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T any](buf []T, offset, length, stride int) (View[T], error) {
	if err := validateLayout(len(buf), offset, length, stride); err != nil {
		return View[T]{}, opErrorf(recvView, "New", err, offset, length, stride)
	}

	return View[T]{buf: buf, l: layout{off: offset, n: length, stride: stride}}, nil
}

// Len returns the number of logical elements.
func (v View[T]) Len() int { return v.l.n }

// IsEmpty reports whether Len() == 0.
func (v View[T]) IsEmpty() bool { return v.l.n == 0 }

// Stride returns the signed distance, in elements, between consecutive
// logical elements.
func (v View[T]) Stride() int { return v.l.stride }

// Offset returns the index in the backing slice of logical element i,
// i.e. base + i*stride.
//
// Errors:
//   - ErrOutOfRange unless 0 <= i < Len().
func (v View[T]) Offset(i int) (int, error) {
	off, err := v.l.addressOf(i)
	if err != nil {
		return 0, opErrorf(recvView, "Offset", err, i)
	}

	return off, nil
}

// At returns logical element i.
//
// Errors:
//   - ErrOutOfRange unless 0 <= i < Len(), regardless of the stride sign.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v View[T]) At(i int) (T, error) {
	off, err := v.l.addressOf(i)
	if err != nil {
		var zero T
		return zero, opErrorf(recvView, "At", err, i)
	}

	return v.buf[off], nil
}

// Index returns logical element i and panics when i is out of range,
// the way indexing a slice does. Prefer At for untrusted indices.
func (v View[T]) Index(i int) T {
	x, err := v.At(i)
	if err != nil {
		panic(err)
	}

	return x
}

// All returns an iterator over (index, element) pairs in increasing
// logical order. Each call returns a fresh, independent sequence.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.l.n; i++ {
			if !yield(i, v.buf[v.l.at(i)]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in increasing logical order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.l.n; i++ {
			if !yield(v.buf[v.l.at(i)]) {
				return
			}
		}
	}
}

// Backward returns an iterator over (index, element) pairs from the last
// logical element to the first.
func (v View[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.l.n - 1; i >= 0; i-- {
			if !yield(i, v.buf[v.l.at(i)]) {
				return
			}
		}
	}
}

// Iter returns a double-ended cursor over the elements.
func (v View[T]) Iter() *Items[T] {
	return newItems(v.buf, v.l)
}

// Sub returns the view of logical elements [start, end).
//
// Errors:
//   - ErrInvalidRange unless 0 <= start <= end <= Len().
func (v View[T]) Sub(start, end int) (View[T], error) {
	l, err := v.l.sub(start, end)
	if err != nil {
		return View[T]{}, opErrorf(recvView, "Sub", err, start, end)
	}

	return View[T]{buf: v.buf, l: l}, nil
}

// SubFrom returns the view of logical elements [start, Len()).
func (v View[T]) SubFrom(start int) (View[T], error) {
	l, err := v.l.sub(start, v.l.n)
	if err != nil {
		return View[T]{}, opErrorf(recvView, "SubFrom", err, start)
	}

	return View[T]{buf: v.buf, l: l}, nil
}

// SubTo returns the view of logical elements [0, end).
func (v View[T]) SubTo(end int) (View[T], error) {
	l, err := v.l.sub(0, end)
	if err != nil {
		return View[T]{}, opErrorf(recvView, "SubTo", err, end)
	}

	return View[T]{buf: v.buf, l: l}, nil
}

// StepBy returns the view of logical elements 0, n, 2n, ...
// The result has stride Stride()*n and length ceil(Len()/n).
//
// Errors:
//   - ErrBadStep when n < 1; ErrStrideOverflow when the new stride overflows.
func (v View[T]) StepBy(n int) (View[T], error) {
	l, err := v.l.everyNth(n)
	if err != nil {
		return View[T]{}, opErrorf(recvView, "StepBy", err, n)
	}

	return View[T]{buf: v.buf, l: l}, nil
}

// Reversed returns the same elements in reverse logical order
// (stride negated, base moved to the former last element).
// An empty view reverses to itself.
func (v View[T]) Reversed() View[T] {
	return View[T]{buf: v.buf, l: v.l.reverse()}
}

// SplitAt returns the views of [0, mid) and [mid, Len()).
//
// Errors:
//   - ErrInvalidRange unless 0 <= mid <= Len().
func (v View[T]) SplitAt(mid int) (View[T], View[T], error) {
	left, right, err := v.l.splitAt(mid)
	if err != nil {
		return View[T]{}, View[T]{}, opErrorf(recvView, "SplitAt", err, mid)
	}

	return View[T]{buf: v.buf, l: left}, View[T]{buf: v.buf, l: right}, nil
}

// Substrides2 splits the view into alternate elements: a view over
// [1 2 3 4 5] yields [1 3 5] and [2 4]. It succeeds for any length,
// including zero and one.
func (v View[T]) Substrides2() (even, odd View[T]) {
	ls, err := v.l.substrides(2)
	if err != nil {
		// unreachable: doubling is skipped for halves of at most one element
		panic(opErrorf(recvView, "Substrides2", err))
	}

	return View[T]{buf: v.buf, l: ls[0]}, View[T]{buf: v.buf, l: ls[1]}
}

// Substrides returns n views; view j holds logical elements j, j+n, j+2n, ...
// A view over [1 2 3 4 5 6 7] split with n = 3 yields [1 4 7], [2 5], [3 6].
// Exactly n views are returned even when Len() < n; the extra ones are empty.
//
// Errors:
//   - ErrBadStep when n < 1; ErrStrideOverflow when the new stride overflows.
func (v View[T]) Substrides(n int) ([]View[T], error) {
	ls, err := v.l.substrides(n)
	if err != nil {
		return nil, opErrorf(recvView, "Substrides", err, n)
	}
	out := make([]View[T], len(ls))
	for j, l := range ls {
		out[j] = View[T]{buf: v.buf, l: l}
	}

	return out, nil
}

// Collect copies the elements, in logical order, into a new slice.
func (v View[T]) Collect() []T {
	out := make([]T, v.l.n)
	for i := range out {
		out[i] = v.buf[v.l.at(i)]
	}

	return out
}

// AsSlice returns the elements as a sub-slice of the backing slice without
// copying, when they are adjacent and ascending (stride 1, or Len() <= 1).
// The returned slice has its capacity clipped to its length.
// It reports false, and returns nil, for any other layout.
func (v View[T]) AsSlice() ([]T, bool) {
	if !v.l.contiguous() {
		return nil, false
	}
	if v.l.n == 0 {
		return nil, true
	}
	end := v.l.off + v.l.n

	return v.buf[v.l.off:end:end], true
}
