// SPDX-License-Identifier: MIT

package parallel

import "github.com/katalvlaran/strided/stride"

// partition is a consumed view divided into disjoint parts, plus what is
// needed to map a part-local index back to the original view.
type partition[T any] struct {
	parts    []*stride.Mutable[T]
	starts   []int // Contiguous only: original index of each part's first element
	strategy Strategy
}

// global maps (part k, local index) to the index in the original view.
func (p partition[T]) global(k, local int) int {
	if p.strategy == Interleaved {
		return k + local*len(p.parts)
	}

	return p.starts[k] + local
}

// planParts returns how many parts n elements are split into:
// min(workers, ceil(n/minPart)), never less than one.
func planParts(n int, o Options) int {
	parts := o.workers
	if byMin := (n + o.minPart - 1) / o.minPart; byMin < parts {
		parts = byMin
	}

	return max(parts, 1)
}

// split consumes m and returns count disjoint parts.
//
// Implementation:
//   - Contiguous: detach m with SubFrom(0), then peel parts off the front
//     with SplitAt; the first n%count parts get one extra element.
//   - Interleaved: Substrides(count).
//
// On error m is left usable only if the very first transform failed.
func split[T any](m *stride.Mutable[T], count int, s Strategy) (partition[T], error) {
	if s == Interleaved {
		parts, err := m.Substrides(count)
		if err != nil {
			return partition[T]{}, err
		}
		return partition[T]{parts: parts, strategy: s}, nil
	}

	n := m.Len()
	rest, err := m.SubFrom(0)
	if err != nil {
		return partition[T]{}, err
	}
	p := partition[T]{
		parts:    make([]*stride.Mutable[T], 0, count),
		starts:   make([]int, 0, count),
		strategy: s,
	}
	base, extra := n/count, n%count
	start := 0
	for k := 0; k < count-1; k++ {
		size := base
		if k < extra {
			size++
		}
		head, tail, err := rest.SplitAt(size)
		if err != nil {
			return partition[T]{}, err
		}
		p.parts = append(p.parts, head)
		p.starts = append(p.starts, start)
		start += size
		rest = tail
	}
	p.parts = append(p.parts, rest)
	p.starts = append(p.starts, start)

	return p, nil
}
