// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strided/stride"
)

const (
	ctxRun     = "Run"
	ctxForEach = "ForEach"

	// ctxCheckEvery is how many elements ForEach visits between
	// cancellation checks.
	ctxCheckEvery = 64
)

// Run consumes m, splits it into disjoint parts and calls fn(ctx, k, part)
// for every part k on its own goroutine.
// MAIN DESCRIPTION:
//   - The sanctioned way to hand pieces of one buffer to several workers.
//
// Implementation:
//   - Stage 1: validate arguments; return ctx.Err() early without consuming m.
//   - Stage 2: plan the part count and split m (Contiguous or Interleaved).
//   - Stage 3: run fn per part on an errgroup derived from ctx, honoring
//     the concurrency limit; wait for all parts.
//
// Behavior highlights:
//   - Parts are disjoint; fn needs no locking for its own part.
//   - The first error cancels the context seen by the other parts and is
//     returned after all goroutines have exited.
//   - An empty m yields a single empty part.
//
// Errors:
//   - ErrNilView, ErrNilFunc; ctx.Err() if ctx is already done.
//   - stride.ErrBorrowed / ErrConsumed / ErrExpired if m cannot be split.
//   - The first error returned by fn.
//
// Complexity:
//   - O(parts) to split, plus the work done by fn.
func Run[T any](ctx context.Context, m *stride.Mutable[T], fn func(ctx context.Context, k int, part *stride.Mutable[T]) error, opts ...Option) error {
	if fn == nil {
		return fmt.Errorf("parallel.%s: %w", ctxRun, ErrNilFunc)
	}
	p, o, err := prepare(ctx, ctxRun, m, opts...)
	if err != nil {
		return err
	}

	return launch(ctx, p, o, fn)
}

// prepare validates the arguments, then consumes m into its parts.
// ctx is checked first so a cancelled call leaves m untouched.
func prepare[T any](ctx context.Context, method string, m *stride.Mutable[T], opts ...Option) (partition[T], Options, error) {
	if m == nil {
		return partition[T]{}, Options{}, fmt.Errorf("parallel.%s: %w", method, ErrNilView)
	}
	if err := ctx.Err(); err != nil {
		return partition[T]{}, Options{}, err
	}

	o := gatherOptions(opts...)
	p, err := split(m, planParts(m.Len(), o), o.strategy)
	if err != nil {
		return partition[T]{}, Options{}, fmt.Errorf("parallel.%s(%s): %w", method, o.strategy, err)
	}

	return p, o, nil
}

// launch runs fn once per part on an errgroup derived from ctx and waits.
func launch[T any](ctx context.Context, p partition[T], o Options, fn func(ctx context.Context, k int, part *stride.Mutable[T]) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if o.limit > 0 {
		g.SetLimit(o.limit)
	}
	for k, part := range p.parts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, k, part)
		})
	}

	return g.Wait()
}

// ForEach consumes m and calls fn(i, p) for every element on a worker
// goroutine, where i is the element's index in m and p points at it.
//
// Behavior highlights:
//   - Each element is visited exactly once; order across parts is unspecified,
//     within a part it is increasing.
//   - A part stops at its first fn error or when ctx is cancelled
//     (checked every few dozen elements).
//
// Errors:
//   - As Run.
func ForEach[T any](ctx context.Context, m *stride.Mutable[T], fn func(i int, p *T) error, opts ...Option) error {
	if fn == nil {
		return fmt.Errorf("parallel.%s: %w", ctxForEach, ErrNilFunc)
	}
	p, o, err := prepare(ctx, ctxForEach, m, opts...)
	if err != nil {
		return err
	}

	return launch(ctx, p, o, func(ctx context.Context, k int, part *stride.Mutable[T]) error {
		var ferr error
		walk := part.ForEachMut(func(local int, e *T) bool {
			if local%ctxCheckEvery == 0 {
				if ferr = ctx.Err(); ferr != nil {
					return false
				}
			}
			ferr = fn(p.global(k, local), e)
			return ferr == nil
		})
		if walk != nil {
			return walk
		}
		return ferr
	})
}
