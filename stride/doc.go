// Package stride provides non-owning views over elements that sit at a fixed,
// signed distance from each other inside a caller-owned slice.
//
// 🚀 What is a strided view?
//
//	A strided view generalizes a slice: logical element i lives at
//	buf[offset + i*stride] instead of buf[offset + i]. Typical data:
//	  • one column of a row-major matrix (stride = number of columns)
//	  • one channel of interleaved audio (stride = number of channels)
//	  • a decimated or reversed signal (stride = k, or stride < 0)
//
// ✨ Two variants:
//   - View[T]: a copyable, read-only value. Copies are independent views
//     over the same memory, never copies of the data.
//   - Mutable[T]: a move-only, read/write handle used through *Mutable[T].
//     Exclusivity is enforced at runtime by a lock-free access token:
//     two live mutable accesses into the same elements are rejected with
//     ErrBorrowed, and a handle used after it was split or converted is
//     rejected with ErrConsumed.
//
// ⚙️ Usage:
//
//	buf := []int{1, 2, 3, 4, 5, 6}
//	odd, _ := stride.New(buf, 0, 3, 2) // [1 3 5]
//	fmt.Println(odd.Reversed())         // [5 3 1]
//
//	m := stride.FromSliceMut(buf)
//	left, right, _ := m.SplitAt(3)      // m is consumed; left/right are disjoint
//	_ = right.Set(0, 10)                // buf == [1 2 3 10 5 6]
//
// Safety:
//   - Every index is bounds-checked against the view, and every constructed
//     layout is checked against the backing slice; there is no unsafe path.
//   - A stride of zero is rejected when the view has more than one element,
//     because it would silently alias every element.
//
// Complexity:
//   - Construction, sub-slicing, re-striding, reversal and splitting: O(1).
//   - Iteration, equality, comparison, Collect and formatting: O(n).
package stride
