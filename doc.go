// Package strided is a set of bounds-checked, copy-free views over every
// k-th element of a slice.
//
// 🚀 What is strided?
//
//	A small library that lets you walk a column of a row-major matrix, one
//	channel of interleaved audio, or every other element of any slice as if
//	it were its own slice:
//		• Read-only views: cheap values you can copy, sub-slice, re-stride, reverse
//		• Mutable views: unique handles that split into disjoint pieces
//		• Runtime exclusivity: overlapping access fails with an error, never a data race
//		• Boundary helpers: row-major matrices, interleaved buffers, parallel splitting
//
// ✨ Why choose strided?
//
//   - Safe by construction: every index is checked; stride arithmetic never overflows
//   - Zero copies: views only remember (offset, length, stride)
//   - Go-native: generics, range-over-func iterators, errors.Is sentinels
//   - Pure Go: no cgo, no unsafe
//
// Under the hood, everything is organized under four subpackages:
//
//	stride      View[T] and Mutable[T], the strided views themselves
//	matrix      row-major Dense lending row/column/diagonal views
//	interleave  interleaved multi-channel buffers lending per-channel views
//	parallel    split a Mutable into parts and process them on an errgroup
//
// Quick start:
//
//	buf := []int{1, 2, 3, 4, 5, 6}
//	odd, _ := stride.New(buf, 0, 3, 2) // [1 3 5]
//	even, _ := stride.New(buf, 1, 3, 2) // [2 4 6]
//
//	m := stride.FromSliceMut(buf)
//	left, right, _ := m.SplitAt(3) // two live, disjoint mutable views
//
// See the examples/ directory for runnable scenarios.
package strided
