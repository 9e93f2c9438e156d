// SPDX-License-Identifier: MIT

// Package stride - content equality and ordering.
//
// Equality and ordering look only at the elements in logical order.
// Base, stride and the backing slice are not part of the contract: a
// stride-2 view over [1 9 3 9] equals FromSlice([]int{1, 3}).

package stride

import "cmp"

// Equal reports whether a and b have the same length and equal elements
// at every logical index.
//
// Complexity:
//   - Time O(n), Space O(1).
func Equal[T comparable](a, b View[T]) bool {
	if a.l.n != b.l.n {
		return false
	}
	for i := 0; i < a.l.n; i++ {
		if a.buf[a.l.at(i)] != b.buf[b.l.at(i)] {
			return false
		}
	}

	return true
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[A, B any](a View[A], b View[B], eq func(A, B) bool) bool {
	if a.l.n != b.l.n {
		return false
	}
	for i := 0; i < a.l.n; i++ {
		if !eq(a.buf[a.l.at(i)], b.buf[b.l.at(i)]) {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically with cmp.Compare: the first
// differing element decides, and a proper prefix sorts first.
// Returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b View[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[A, B any](a View[A], b View[B], compare func(A, B) int) int {
	n := min(a.l.n, b.l.n)
	for i := 0; i < n; i++ {
		if c := compare(a.buf[a.l.at(i)], b.buf[b.l.at(i)]); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.l.n, b.l.n)
}
