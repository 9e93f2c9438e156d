// SPDX-License-Identifier: MIT

// Package stride - formatting.
//
// Views print as the sequence of their elements, exactly as fmt prints a
// []T with the same verb and flags; base and stride never appear.

package stride

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtBadVerb = "%%!%c(%v)" // fmt-style error marker for an unprintable Mutable
)

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Formatter = View[int]{}
	_ fmt.Stringer  = View[int]{}
	_ fmt.Formatter = (*Mutable[int])(nil)
	_ fmt.Stringer  = (*Mutable[int])(nil)
)

// Format implements fmt.Formatter by delegating to the []T of the elements.
func (v View[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), v.Collect())
}

// String returns the elements formatted like a slice, e.g. "[1 3 5]".
func (v View[T]) String() string {
	return fmt.Sprint(v.Collect())
}

// Join formats each element with %v and joins them with sep, without
// brackets: Join(", ") on [1 3 5] returns "1, 3, 5".
func (v View[T]) Join(sep string) string {
	var b strings.Builder
	for i := 0; i < v.l.n; i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v.buf[v.l.at(i)])
	}

	return b.String()
}

// Format implements fmt.Formatter for Mutable. It takes a shared borrow
// for the duration of the call; when the handle is lent out exclusively
// or consumed it prints a %!v(error) marker instead of the elements.
func (m *Mutable[T]) Format(f fmt.State, verb rune) {
	ro, release, err := m.AsReadOnly()
	if err != nil {
		fmt.Fprintf(f, _fmtBadVerb, verb, err)
		return
	}
	defer release()
	ro.Format(f, verb)
}

// String returns the elements formatted like a slice, or a %!v(error)
// marker when the handle cannot be read.
func (m *Mutable[T]) String() string {
	return fmt.Sprint(m)
}
