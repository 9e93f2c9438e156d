// SPDX-License-Identifier: MIT

// Package parallel splits a mutable strided view into disjoint parts and
// processes each part on its own goroutine.
//
// Run consumes a *stride.Mutable, splits it with SplitAt (Contiguous) or
// Substrides (Interleaved), and runs fn once per part on an errgroup. The
// parts never overlap, so fn may write its part freely without locking.
// The first error cancels the context handed to the other parts and is
// returned once every part has finished; no goroutine outlives Run.
//
// ForEach is the per-element form: fn receives each element's index in the
// original view together with an exclusive pointer.
//
// Configuration follows the functional-options pattern:
//
//	err := parallel.Run(ctx, m, fn,
//		parallel.WithWorkers(4),
//		parallel.WithLimit(2),
//		parallel.WithStrategy(parallel.Interleaved),
//	)
package parallel
