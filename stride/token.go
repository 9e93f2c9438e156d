// SPDX-License-Identifier: MIT

// Package stride - the runtime access token behind Mutable.
//
// Go has no borrow checker, so every Mutable carries a lock-free token
// that encodes who may touch its elements right now:
//
//	state == 0              free
//	state == -1             lent exclusively (Set, Modify, IterMut, Reborrow, a transform in progress)
//	state  > 0              lent to that many read-only borrowers (At, AsReadOnly)
//	state == math.MinInt32  consumed: the handle was moved into new handles
//
// Every transition is a single CAS, so a conflicting access fails fast
// with ErrBorrowed or ErrConsumed instead of aliasing.

package stride

import (
	"math"

	"go.uber.org/atomic"
)

const (
	stateFree      int32 = 0
	stateExclusive int32 = -1
	stateConsumed  int32 = math.MinInt32
)

// lease scopes handles lent by Reborrow. A handle whose lease chain
// contains a closed lease is expired.
type lease struct {
	closed atomic.Bool
	parent *lease
}

// expired reports whether l or any of its ancestors was closed.
func (l *lease) expired() bool {
	for ; l != nil; l = l.parent {
		if l.closed.Load() {
			return true
		}
	}

	return false
}

// token is the per-handle access state. The zero token is free with no lease.
type token struct {
	state atomic.Int32
	lease *lease // nil for root handles
}

// acquireExclusive moves free -> exclusive.
//
// Errors:
//   - ErrExpired, ErrConsumed, or ErrBorrowed when any borrow is live.
func (t *token) acquireExclusive() error {
	if t.lease.expired() {
		return ErrExpired
	}
	if t.state.CompareAndSwap(stateFree, stateExclusive) {
		return nil
	}
	if t.state.Load() == stateConsumed {
		return ErrConsumed
	}

	return ErrBorrowed
}

// releaseExclusive moves exclusive -> free.
func (t *token) releaseExclusive() { t.state.Store(stateFree) }

// consume moves exclusive -> consumed. The caller must hold the exclusive
// borrow; the transition is terminal.
func (t *token) consume() { t.state.Store(stateConsumed) }

// acquireShared adds one read-only borrower.
//
// Errors:
//   - ErrExpired, ErrConsumed, or ErrBorrowed while lent exclusively.
func (t *token) acquireShared() error {
	if t.lease.expired() {
		return ErrExpired
	}
	for {
		s := t.state.Load()
		switch {
		case s == stateConsumed:
			return ErrConsumed
		case s < stateFree:
			return ErrBorrowed
		}
		if t.state.CompareAndSwap(s, s+1) {
			return nil
		}
	}
}

// releaseShared drops one read-only borrower.
func (t *token) releaseShared() { t.state.Dec() }
