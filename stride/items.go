// SPDX-License-Identifier: MIT

package stride

// Items is a double-ended cursor over the elements of a View.
// Next consumes from the front, NextBack from the back; the two ends meet
// without yielding any element twice. Len is always exact.
type Items[T any] struct {
	buf   []T
	l     layout
	front int // next logical index for Next
	back  int // one past the next logical index for NextBack
}

func newItems[T any](buf []T, l layout) *Items[T] {
	return &Items[T]{buf: buf, l: l, front: 0, back: l.n}
}

// Next returns the next element from the front and true, or the zero
// value and false once the cursor is exhausted.
func (it *Items[T]) Next() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	x := it.buf[it.l.at(it.front)]
	it.front++

	return x, true
}

// NextBack returns the next element from the back and true, or the zero
// value and false once the cursor is exhausted.
func (it *Items[T]) NextBack() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	it.back--

	return it.buf[it.l.at(it.back)], true
}

// Len returns the number of elements not yet yielded.
func (it *Items[T]) Len() int { return it.back - it.front }
