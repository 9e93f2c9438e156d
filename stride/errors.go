// SPDX-License-Identifier: MIT
// Package stride: sentinel error set.
// Every public operation returns one of these sentinels, usually wrapped
// with the receiver, method and arguments ("View.At(7): stride: index out
// of range"). Callers match them with errors.Is.

package stride

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOutOfRange indicates that a logical index is outside [0, Len()),
	// or that a layout would address memory outside the backing slice.
	ErrOutOfRange = errors.New("stride: index out of range")

	// ErrInvalidRange indicates a sub-range with start > end, end > Len(),
	// a negative bound, or a negative length.
	ErrInvalidRange = errors.New("stride: invalid range")

	// ErrBadStep indicates a step (StepBy, Substrides) smaller than 1.
	ErrBadStep = errors.New("stride: step must be >= 1")

	// ErrZeroStride indicates a zero stride on a view with more than one
	// element, which would alias every logical element to one address.
	ErrZeroStride = errors.New("stride: zero stride with more than one element")

	// ErrStrideOverflow indicates that a stride or address computation
	// does not fit in an int.
	ErrStrideOverflow = errors.New("stride: stride too large")

	// ErrLengthMismatch indicates that two views must have equal lengths.
	ErrLengthMismatch = errors.New("stride: length mismatch")

	// ErrBorrowed indicates an aliasing violation: the Mutable is already
	// lent out (exclusively, or to read-only demotions) and the requested
	// access would overlap it.
	ErrBorrowed = errors.New("stride: view is borrowed")

	// ErrConsumed indicates use of a Mutable after it was split, sub-sliced,
	// re-strided, reversed or converted into new handles.
	ErrConsumed = errors.New("stride: view used after move")

	// ErrExpired indicates use of a handle obtained from Reborrow after the
	// Reborrow callback returned.
	ErrExpired = errors.New("stride: reborrowed view expired")
)

// Receiver tags used in error wrappers.
const (
	recvView    = "View"
	recvMutable = "Mutable"
)

// opErrorf wraps err with "<recv>.<method>(<args>): ".
// Args are rendered comma-separated, the way the call site was written.
func opErrorf(recv, method string, err error, args ...int) error {
	var b strings.Builder
	b.WriteString(recv)
	b.WriteByte('.')
	b.WriteString(method)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(a))
	}
	b.WriteByte(')')

	return fmt.Errorf("%s: %w", b.String(), err)
}
