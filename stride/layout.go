// SPDX-License-Identifier: MIT

// Package stride - layout arithmetic shared by View and Mutable.
//
// Purpose:
//   - Map logical index i to the backing-slice index off + i*stride.
//   - Derive sub-layouts (range, every k-th, reversed, split, interleaved)
//     in O(1) without touching element memory.
//
// Invariants (established by validateLayout, preserved by every method):
//   - n >= 0; for n > 0 every address(i), 0 <= i < n, is a valid index of
//     the backing slice the layout was validated against.
//   - n > 1 implies stride != 0.

package stride

// layout is the (base, length, stride) triple in element units.
type layout struct {
	off    int // backing index of logical element 0 (meaningless when n == 0)
	n      int // number of logical elements
	stride int // signed distance between consecutive logical elements
}

// at returns the backing index of logical element i without checking i.
// Callers must have validated 0 <= i < n.
func (l layout) at(i int) int { return l.off + i*l.stride }

// addressOf returns the backing index of logical element i.
//
// Errors:
//   - ErrOutOfRange unless 0 <= i < n.
//
// Complexity:
//   - Time O(1), Space O(1).
func (l layout) addressOf(i int) (int, error) {
	if err := validateIndex(i, l.n); err != nil {
		return 0, err
	}

	return l.at(i), nil
}

// sub returns the layout of logical elements [start, end).
// MAIN DESCRIPTION:
//   - Same stride; base moves to address(start); length end-start.
//
// Behavior highlights:
//   - sub(n, n) is a valid empty layout; its base is not dereferenced.
//
// Errors:
//   - ErrInvalidRange unless 0 <= start <= end <= n.
func (l layout) sub(start, end int) (layout, error) {
	if err := validateRange(start, end, l.n); err != nil {
		return layout{}, err
	}
	if start == end {
		return layout{off: l.off, n: 0, stride: l.stride}, nil
	}

	return layout{off: l.at(start), n: end - start, stride: l.stride}, nil
}

// everyNth keeps logical elements 0, k, 2k, ...
// MAIN DESCRIPTION:
//   - n' = ceil(n/k), base unchanged.
//   - stride' = stride*k when n' > 1; a layout of at most one element keeps
//     its stride, which no address depends on.
//
// Errors:
//   - ErrBadStep when k < 1.
//   - ErrStrideOverflow when stride*k does not fit in an int (unreachable
//     for a layout that passed validateLayout: n' > 1 implies k <= n-1).
func (l layout) everyNth(k int) (layout, error) {
	if err := validateStep(k); err != nil {
		return layout{}, err
	}
	n := ceilDiv(l.n, k)
	s, err := scaledStride(l.stride, k, n)
	if err != nil {
		return layout{}, err
	}

	return layout{off: l.off, n: n, stride: s}, nil
}

// scaledStride returns stride*k for a result of n elements, or stride
// unchanged when n <= 1.
func scaledStride(stride, k, n int) (int, error) {
	if n <= 1 {
		return stride, nil
	}
	s, ok := checkedMul(stride, k)
	if !ok {
		return 0, ErrStrideOverflow
	}

	return s, nil
}

// reverse walks the same elements from last to first.
// An empty layout is returned unchanged.
func (l layout) reverse() layout {
	if l.n == 0 {
		return l
	}

	return layout{off: l.at(l.n - 1), n: l.n, stride: -l.stride}
}

// splitAt returns [0, mid) and [mid, n).
//
// Errors:
//   - ErrInvalidRange unless 0 <= mid <= n.
func (l layout) splitAt(mid int) (layout, layout, error) {
	if mid < 0 || mid > l.n {
		return layout{}, layout{}, ErrInvalidRange
	}
	left := layout{off: l.off, n: mid, stride: l.stride}
	right := layout{off: l.off, n: l.n - mid, stride: l.stride}
	if mid < l.n {
		right.off = l.at(mid)
	}

	return left, right, nil
}

// substride returns the j-th of count interleaved layouts: logical elements
// j, j+count, j+2*count, ...
//
// Behavior highlights:
//   - The count layouts partition [0, n) with no index in two of them.
//   - Layouts past the last element are empty (n' == 0) but still valid.
//   - As in everyNth, a result of at most one element keeps the stride.
//
// Errors:
//   - ErrBadStep when count < 1; ErrOutOfRange unless 0 <= j < count;
//     ErrStrideOverflow when stride*count does not fit in an int.
func (l layout) substride(j, count int) (layout, error) {
	if err := validateStep(count); err != nil {
		return layout{}, err
	}
	if err := validateIndex(j, count); err != nil {
		return layout{}, err
	}
	if j >= l.n {
		return layout{off: l.off, n: 0, stride: l.stride}, nil
	}
	n := ceilDiv(l.n-j, count)
	s, err := scaledStride(l.stride, count, n)
	if err != nil {
		return layout{}, err
	}

	return layout{off: l.at(j), n: n, stride: s}, nil
}

// substrides returns all count interleaved layouts in order j = 0..count-1.
func (l layout) substrides(count int) ([]layout, error) {
	if err := validateStep(count); err != nil {
		return nil, err
	}
	out := make([]layout, count)
	var err error
	for j := 0; j < count; j++ {
		if out[j], err = l.substride(j, count); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// contiguous reports whether the layout covers adjacent ascending elements.
func (l layout) contiguous() bool { return l.n <= 1 || l.stride == 1 }

// ceilDiv returns ceil(a/b) for a >= 0, b >= 1 without overflowing a+b-1.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}

	return q
}
