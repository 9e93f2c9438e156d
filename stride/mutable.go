// SPDX-License-Identifier: MIT

// Package stride - Mutable: the exclusive, read/write strided view.
//
// Purpose:
//   - Same layout model as View, plus writes.
//   - Move-only: splitting, sub-slicing, re-striding, reversing or converting
//     consumes the handle and returns new, disjoint handles. The consumed
//     handle reports Len() == 0 and fails every element access with
//     ErrConsumed.
//   - Exclusive: at any time the elements of a handle are either free,
//     lent to one writer, or lent to any number of readers (see token.go).
//
// Concurrency:
//   - A single handle is not meant to be shared between goroutines; the
//     token turns such misuse into ErrBorrowed instead of a data race on the
//     elements. Split the handle and give each part to its own goroutine
//     (package parallel does exactly that).
//
// Complexity quicksheet:
//   - At/Set/Modify/Swap and every transform: O(1). Substrides(k): O(k).
//   - Fill/CopyFrom/ForEachMut/IterMut: O(n).

package stride

import (
	"iter"
	"sync"
)

// ---------- method tags used in error wrappers ----------
const (
	ctxAt           = "At"
	ctxSet          = "Set"
	ctxModify       = "Modify"
	ctxSwap         = "Swap"
	ctxFill         = "Fill"
	ctxCopyFrom     = "CopyFrom"
	ctxForEachMut   = "ForEachMut"
	ctxIterMut      = "IterMut"
	ctxAsReadOnly   = "AsReadOnly"
	ctxIntoReadOnly = "IntoReadOnly"
	ctxReborrow     = "Reborrow"
	ctxSplitAt      = "SplitAt"
	ctxSub          = "Sub"
	ctxSubFrom      = "SubFrom"
	ctxSubTo        = "SubTo"
	ctxStepBy       = "StepBy"
	ctxReversed     = "Reversed"
	ctxSubstrides   = "Substrides"
	ctxSubstrides2  = "Substrides2"
)

// Mutable is an exclusive read/write strided view over a caller-owned []T.
// Always use it through *Mutable[T]; never copy the struct.
// A new(Mutable[T]) is a valid, free, empty handle.
type Mutable[T any] struct {
	buf []T
	l   layout
	tok token
}

// FromSliceMut wraps s as a stride-1 mutable view in O(1).
// The caller hands write access to s over to the returned handle and
// must not write to s through other means while the handle is in use.
func FromSliceMut[T any](s []T) *Mutable[T] {
	return &Mutable[T]{buf: s, l: layout{off: 0, n: len(s), stride: 1}}
}

// NewMut is the mutable counterpart of New: length elements of buf,
// starting at buf[offset], stride elements apart.
//
// Errors:
//   - Same as New.
func NewMut[T any](buf []T, offset, length, stride int) (*Mutable[T], error) {
	if err := validateLayout(len(buf), offset, length, stride); err != nil {
		return nil, opErrorf(recvMutable, "NewMut", err, offset, length, stride)
	}

	return &Mutable[T]{buf: buf, l: layout{off: offset, n: length, stride: stride}}, nil
}

// child creates a handle over l that shares m's backing slice and lease.
func (m *Mutable[T]) child(l layout) *Mutable[T] {
	return &Mutable[T]{buf: m.buf, l: l, tok: token{lease: m.tok.lease}}
}

// Len returns the number of logical elements; 0 once consumed.
func (m *Mutable[T]) Len() int { return m.l.n }

// IsEmpty reports whether Len() == 0.
func (m *Mutable[T]) IsEmpty() bool { return m.l.n == 0 }

// Stride returns the signed distance between consecutive logical elements.
func (m *Mutable[T]) Stride() int { return m.l.stride }

// Offset returns the index in the backing slice of logical element i.
//
// Errors:
//   - ErrOutOfRange unless 0 <= i < Len().
func (m *Mutable[T]) Offset(i int) (int, error) {
	off, err := m.l.addressOf(i)
	if err != nil {
		return 0, opErrorf(recvMutable, "Offset", err, i)
	}

	return off, nil
}

// At returns logical element i under a short shared borrow.
//
// Errors:
//   - ErrOutOfRange; ErrBorrowed while lent exclusively; ErrConsumed; ErrExpired.
func (m *Mutable[T]) At(i int) (T, error) {
	var zero T
	if err := m.tok.acquireShared(); err != nil {
		return zero, opErrorf(recvMutable, ctxAt, err, i)
	}
	defer m.tok.releaseShared()

	off, err := m.l.addressOf(i)
	if err != nil {
		return zero, opErrorf(recvMutable, ctxAt, err, i)
	}

	return m.buf[off], nil
}

// Set stores x at logical element i under a short exclusive borrow.
//
// Errors:
//   - ErrOutOfRange; ErrBorrowed while any borrow is live; ErrConsumed; ErrExpired.
func (m *Mutable[T]) Set(i int, x T) error {
	if err := m.tok.acquireExclusive(); err != nil {
		return opErrorf(recvMutable, ctxSet, err, i)
	}
	defer m.tok.releaseExclusive()

	off, err := m.l.addressOf(i)
	if err != nil {
		return opErrorf(recvMutable, ctxSet, err, i)
	}
	m.buf[off] = x

	return nil
}

// Modify calls fn with an exclusive pointer to logical element i.
// The pointer is valid only until fn returns; fn must not retain it, and
// any access to m from inside fn fails with ErrBorrowed.
//
// Errors:
//   - ErrOutOfRange; ErrBorrowed; ErrConsumed; ErrExpired.
func (m *Mutable[T]) Modify(i int, fn func(p *T)) error {
	if err := m.tok.acquireExclusive(); err != nil {
		return opErrorf(recvMutable, ctxModify, err, i)
	}
	defer m.tok.releaseExclusive()

	off, err := m.l.addressOf(i)
	if err != nil {
		return opErrorf(recvMutable, ctxModify, err, i)
	}
	fn(&m.buf[off])

	return nil
}

// Swap exchanges logical elements i and j in O(1).
//
// Errors:
//   - ErrOutOfRange when either index is invalid; ErrBorrowed; ErrConsumed; ErrExpired.
func (m *Mutable[T]) Swap(i, j int) error {
	if err := m.tok.acquireExclusive(); err != nil {
		return opErrorf(recvMutable, ctxSwap, err, i, j)
	}
	defer m.tok.releaseExclusive()

	a, err := m.l.addressOf(i)
	if err != nil {
		return opErrorf(recvMutable, ctxSwap, err, i, j)
	}
	b, err := m.l.addressOf(j)
	if err != nil {
		return opErrorf(recvMutable, ctxSwap, err, i, j)
	}
	m.buf[a], m.buf[b] = m.buf[b], m.buf[a]

	return nil
}

// Fill stores x in every logical element.
func (m *Mutable[T]) Fill(x T) error {
	if err := m.tok.acquireExclusive(); err != nil {
		return opErrorf(recvMutable, ctxFill, err)
	}
	defer m.tok.releaseExclusive()

	for i := 0; i < m.l.n; i++ {
		m.buf[m.l.at(i)] = x
	}

	return nil
}

// CopyFrom copies src into m element by element, in logical order.
//
// Errors:
//   - ErrLengthMismatch unless src.Len() == m.Len(); ErrBorrowed (also when
//     src was demoted from m and is still held); ErrConsumed; ErrExpired.
func (m *Mutable[T]) CopyFrom(src View[T]) error {
	if err := m.tok.acquireExclusive(); err != nil {
		return opErrorf(recvMutable, ctxCopyFrom, err)
	}
	defer m.tok.releaseExclusive()

	if src.l.n != m.l.n {
		return opErrorf(recvMutable, ctxCopyFrom, ErrLengthMismatch, src.l.n)
	}
	for i := 0; i < m.l.n; i++ {
		m.buf[m.l.at(i)] = src.buf[src.l.at(i)]
	}

	return nil
}

// ForEachMut calls fn with an exclusive pointer to every logical element,
// in increasing order, each exactly once. Iteration stops early when fn
// returns false. Pointers are valid only during their own call.
//
// Errors:
//   - ErrBorrowed; ErrConsumed; ErrExpired. Never an error from fn itself.
func (m *Mutable[T]) ForEachMut(fn func(i int, p *T) bool) error {
	if err := m.tok.acquireExclusive(); err != nil {
		return opErrorf(recvMutable, ctxForEachMut, err)
	}
	defer m.tok.releaseExclusive()

	for i := 0; i < m.l.n; i++ {
		if !fn(i, &m.buf[m.l.at(i)]) {
			break
		}
	}

	return nil
}

// IterMut returns a single-pass iterator of exclusive pointers, in
// increasing logical order. The exclusive borrow is taken when the range
// loop starts and released when it ends, so ranging again afterwards is
// fine but ranging from inside the loop body is not.
//
// IterMut panics with an error wrapping ErrBorrowed, ErrConsumed or
// ErrExpired when the borrow cannot be taken; use ForEachMut to get the
// error instead.
func (m *Mutable[T]) IterMut() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		if err := m.tok.acquireExclusive(); err != nil {
			panic(opErrorf(recvMutable, ctxIterMut, err))
		}
		defer m.tok.releaseExclusive()

		for i := 0; i < m.l.n; i++ {
			if !yield(i, &m.buf[m.l.at(i)]) {
				return
			}
		}
	}
}

// AsReadOnly demotes m to a read-only View. Any number of demotions may be
// live at once; while at least one is, every write to m fails with
// ErrBorrowed. Call release exactly once when done with the View (extra
// calls are no-ops); the View must not be used afterwards.
//
// Errors:
//   - ErrBorrowed while lent exclusively; ErrConsumed; ErrExpired.
func (m *Mutable[T]) AsReadOnly() (View[T], func(), error) {
	if err := m.tok.acquireShared(); err != nil {
		return View[T]{}, func() {}, opErrorf(recvMutable, ctxAsReadOnly, err)
	}
	var once sync.Once
	release := func() { once.Do(m.tok.releaseShared) }

	return View[T]{buf: m.buf, l: m.l}, release, nil
}

// WithReadOnly calls fn with a read-only demotion of m and releases it
// when fn returns.
func (m *Mutable[T]) WithReadOnly(fn func(v View[T])) error {
	v, release, err := m.AsReadOnly()
	if err != nil {
		return err
	}
	defer release()
	fn(v)

	return nil
}

// IntoReadOnly consumes m and returns a View over the same elements.
// No write access to them remains.
//
// A View carries no lease, so a handle lent by Reborrow (or derived from
// one) cannot be converted: the View would outlive the lend while the
// parent becomes writable again. Such handles fail with ErrBorrowed and
// stay usable; read them through WithReadOnly instead.
//
// Errors:
//   - ErrBorrowed (also for leased handles); ErrConsumed; ErrExpired.
func (m *Mutable[T]) IntoReadOnly() (View[T], error) {
	out, err := m.transform(ctxIntoReadOnly, nil, func(l layout) ([]layout, error) {
		if m.tok.lease != nil {
			return nil, ErrBorrowed
		}
		return []layout{l}, nil
	})
	if err != nil {
		return View[T]{}, err
	}

	return View[T]{buf: out[0].buf, l: out[0].l}, nil
}

// Reborrow lends m to fn as a temporary handle over the same elements,
// the explicit form of passing a shorter-lived &mut. While fn runs m is
// lent exclusively. The temporary handle may itself be split or
// transformed, but it and every handle derived from it expire when fn
// returns; later use fails with ErrExpired. m is usable again afterwards.
// IntoReadOnly is refused inside the lend; use WithReadOnly.
//
// Errors:
//   - ErrBorrowed; ErrConsumed; ErrExpired; or whatever fn returns.
func (m *Mutable[T]) Reborrow(fn func(tmp *Mutable[T]) error) error {
	if err := m.tok.acquireExclusive(); err != nil {
		return opErrorf(recvMutable, ctxReborrow, err)
	}
	defer m.tok.releaseExclusive()

	ls := &lease{parent: m.tok.lease}
	defer ls.closed.Store(true)
	tmp := &Mutable[T]{buf: m.buf, l: m.l, tok: token{lease: ls}}

	return fn(tmp)
}

// transform is the one place where a handle is consumed.
// MAIN DESCRIPTION:
//   - Take the exclusive borrow, derive the new layouts, then either release
//     (on error, m stays usable) or mark m consumed and hand out children.
//
// Behavior highlights:
//   - Children share the backing slice and lease, never the token.
//   - A failed transform leaves m untouched.
func (m *Mutable[T]) transform(method string, args []int, derive func(layout) ([]layout, error)) ([]*Mutable[T], error) {
	if err := m.tok.acquireExclusive(); err != nil {
		return nil, opErrorf(recvMutable, method, err, args...)
	}
	ls, err := derive(m.l)
	if err != nil {
		m.tok.releaseExclusive()
		return nil, opErrorf(recvMutable, method, err, args...)
	}
	out := make([]*Mutable[T], len(ls))
	for j, l := range ls {
		out[j] = m.child(l)
	}
	m.buf, m.l = nil, layout{}
	m.tok.consume()

	return out, nil
}

// SplitAt consumes m and returns disjoint handles over [0, mid) and
// [mid, Len()). This is the way to hold two live mutable views at once.
//
// Errors:
//   - ErrInvalidRange unless 0 <= mid <= Len(); ErrBorrowed; ErrConsumed; ErrExpired.
func (m *Mutable[T]) SplitAt(mid int) (*Mutable[T], *Mutable[T], error) {
	out, err := m.transform(ctxSplitAt, []int{mid}, func(l layout) ([]layout, error) {
		left, right, err := l.splitAt(mid)
		return []layout{left, right}, err
	})
	if err != nil {
		return nil, nil, err
	}

	return out[0], out[1], nil
}

// Sub consumes m and returns the handle of logical elements [start, end).
func (m *Mutable[T]) Sub(start, end int) (*Mutable[T], error) {
	return m.single(ctxSub, []int{start, end}, func(l layout) (layout, error) { return l.sub(start, end) })
}

// SubFrom consumes m and returns the handle of logical elements [start, Len()).
func (m *Mutable[T]) SubFrom(start int) (*Mutable[T], error) {
	return m.single(ctxSubFrom, []int{start}, func(l layout) (layout, error) { return l.sub(start, l.n) })
}

// SubTo consumes m and returns the handle of logical elements [0, end).
func (m *Mutable[T]) SubTo(end int) (*Mutable[T], error) {
	return m.single(ctxSubTo, []int{end}, func(l layout) (layout, error) { return l.sub(0, end) })
}

// StepBy consumes m and returns the handle of logical elements 0, n, 2n, ...
// The skipped elements become unreachable through this lineage.
func (m *Mutable[T]) StepBy(n int) (*Mutable[T], error) {
	return m.single(ctxStepBy, []int{n}, func(l layout) (layout, error) { return l.everyNth(n) })
}

// Reversed consumes m and returns the handle of the same elements in
// reverse logical order.
func (m *Mutable[T]) Reversed() (*Mutable[T], error) {
	return m.single(ctxReversed, nil, func(l layout) (layout, error) { return l.reverse(), nil })
}

// Substrides2 consumes m and returns two disjoint handles over alternate
// elements: [1 2 3 4 5] becomes [1 3 5] and [2 4].
func (m *Mutable[T]) Substrides2() (even, odd *Mutable[T], err error) {
	out, err := m.transform(ctxSubstrides2, nil, func(l layout) ([]layout, error) {
		return l.substrides(2)
	})
	if err != nil {
		return nil, nil, err
	}

	return out[0], out[1], nil
}

// Substrides consumes m and returns n disjoint handles; handle j covers
// logical elements j, j+n, j+2n, ... Exactly n handles are returned.
func (m *Mutable[T]) Substrides(n int) ([]*Mutable[T], error) {
	return m.transform(ctxSubstrides, []int{n}, func(l layout) ([]layout, error) {
		return l.substrides(n)
	})
}

// single adapts a one-layout derivation to transform.
func (m *Mutable[T]) single(method string, args []int, derive func(layout) (layout, error)) (*Mutable[T], error) {
	out, err := m.transform(method, args, func(l layout) ([]layout, error) {
		nl, err := derive(l)
		if err != nil {
			return nil, err
		}
		return []layout{nl}, nil
	})
	if err != nil {
		return nil, err
	}

	return out[0], nil
}
