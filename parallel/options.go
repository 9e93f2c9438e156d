// SPDX-License-Identifier: MIT
// Package parallel: functional options for Run and ForEach.
//
// Design:
//   - Defaults are documented constants (single source of truth).
//   - WithX constructors panic only on nonsensical values (programmer error).

package parallel

import (
	"fmt"
	"runtime"
)

// Strategy selects how a view is divided between workers.
type Strategy int

const (
	// Contiguous gives each worker one run of adjacent logical elements
	// (SplitAt). Best when fn benefits from locality.
	Contiguous Strategy = iota

	// Interleaved gives worker k the elements k, k+parts, k+2*parts, ...
	// (Substrides). Best when cost varies smoothly along the view.
	Interleaved
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Contiguous:
		return "contiguous"
	case Interleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of parts; 0 means runtime.GOMAXPROCS(0).
	DefaultWorkers = 0

	// DefaultLimit caps concurrently running parts; 0 means no cap.
	DefaultLimit = 0

	// DefaultMinPart is the smallest number of elements worth its own part.
	DefaultMinPart = 1

	// DefaultStrategy splits into contiguous runs.
	DefaultStrategy = Contiguous
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersNegative = "parallel: WithWorkers: n must be >= 0"
	panicLimitNegative   = "parallel: WithLimit: n must be >= 0"
	panicMinPartInvalid  = "parallel: WithMinPart: n must be >= 1"
	panicStrategyUnknown = "parallel: WithStrategy: unknown strategy"
)

// Option configures Run and ForEach.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	workers  int      // DefaultWorkers
	limit    int      // DefaultLimit
	minPart  int      // DefaultMinPart
	strategy Strategy // DefaultStrategy
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:  DefaultWorkers,
		limit:    DefaultLimit,
		minPart:  DefaultMinPart,
		strategy: DefaultStrategy,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// WithWorkers sets the number of parts the view is split into.
// 0 restores the GOMAXPROCS default. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

// WithLimit caps how many parts run at the same time (errgroup.SetLimit).
// 0 means no cap. Panics if n < 0.
func WithLimit(n int) Option {
	if n < 0 {
		panic(panicLimitNegative)
	}

	return func(o *Options) { o.limit = n }
}

// WithMinPart sets the minimum number of elements per part; short views
// get fewer parts than workers. Panics if n < 1.
func WithMinPart(n int) Option {
	if n < 1 {
		panic(panicMinPartInvalid)
	}

	return func(o *Options) { o.minPart = n }
}

// WithStrategy selects Contiguous or Interleaved splitting.
// Panics on any other value.
func WithStrategy(s Strategy) Option {
	if s != Contiguous && s != Interleaved {
		panic(panicStrategyUnknown)
	}

	return func(o *Options) { o.strategy = s }
}
