// SPDX-License-Identifier: MIT
// Package: stride
//
// Purpose:
//   - Single source of truth for layout, index, range and step checks.
//   - Return plain sentinels (no wrapping) so public methods wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, allocation-free and O(1).

package stride

import "math"

// checkedMul returns a*b and whether the product fits in an int.
func checkedMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}

// checkedAdd returns a+b and whether the sum fits in an int.
func checkedAdd(a, b int) (int, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}

	return c, true
}

// validateLayout checks that (off, n, stride) addresses only elements of a
// backing slice of length bufLen.
//
// Implementation:
//   - Stage 1: n must be non-negative; n == 0 is always valid.
//   - Stage 2: n > 1 requires stride != 0.
//   - Stage 3: the first and last addresses must lie in [0, bufLen). The
//     addresses are monotonic in i, so every address in between does too.
//
// Errors:
//   - ErrInvalidRange (n < 0), ErrZeroStride, ErrStrideOverflow, ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func validateLayout(bufLen, off, n, stride int) error {
	if n < 0 {
		return ErrInvalidRange
	}
	if n == 0 {
		return nil
	}
	if n > 1 && stride == 0 {
		return ErrZeroStride
	}
	if off < 0 || off >= bufLen {
		return ErrOutOfRange
	}
	span, ok := checkedMul(n-1, stride)
	if !ok {
		return ErrStrideOverflow
	}
	last, ok := checkedAdd(off, span)
	if !ok {
		return ErrStrideOverflow
	}
	if last < 0 || last >= bufLen {
		return ErrOutOfRange
	}

	return nil
}

// validateIndex checks 0 <= i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateRange checks 0 <= start <= end <= n.
func validateRange(start, end, n int) error {
	if start < 0 || start > end || end > n {
		return ErrInvalidRange
	}

	return nil
}

// validateStep checks k >= 1.
func validateStep(k int) error {
	if k < 1 {
		return ErrBadStep
	}

	return nil
}
