// SPDX-License-Identifier: MIT
// Package matrix: functional options for Dense construction.
//
// Purpose:
//   - Single source of truth for per-matrix policy defaults.
//   - WithX constructors; options are applied in order, last write wins.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// NewDenseFrom, Set and Apply.
	DefaultValidateNaNInf = true
)

// Option configures a Dense at construction time.
type Option func(*Options)

// Options holds the resolved construction policy. Fields are unexported;
// use the WithX constructors.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// gatherOptions resolves opts over the defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithValidateNaNInf makes NewDenseFrom, Set and Apply reject NaN and ±Inf
// with ErrNaNInf. It is the default and exists to override an earlier
// WithNoValidateNaNInf in the same option list.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets non-finite values through. The relaxed policy
// travels with the matrix, so Clone keeps it.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}
