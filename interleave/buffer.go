// SPDX-License-Identifier: MIT

package interleave

import (
	"fmt"

	"github.com/katalvlaran/strided/stride"
)

const (
	ctxNew          = "New"
	ctxChannel      = "Channel"
	ctxFrame        = "Frame"
	ctxWithChannel  = "WithChannel"
	ctxWithFrame    = "WithFrame"
	ctxChannelMut   = "ChannelMut"
	ctxFrameMut     = "FrameMut"
	ctxChannelsMut  = "ChannelsMut"
	ctxDeinterleave = "Deinterleave"
	ctxInterleave   = "Interleave"
)

// bufferErrorf wraps err with "Buffer.<method>(args)".
func bufferErrorf(method string, err error, args ...int) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("Buffer.%s(): %w", method, err)
	case 1:
		return fmt.Errorf("Buffer.%s(%d): %w", method, args[0], err)
	default:
		return fmt.Errorf("Buffer.%s(%d,%d): %w", method, args[0], args[1], err)
	}
}

// Buffer is an interleaved multi-channel buffer over caller-owned data.
//   - ch is the channel count (>0); frames = len(data)/ch.
//   - root is the single mutable handle over data, lent by the *Mut methods.
type Buffer[T any] struct {
	data   []T
	ch     int
	frames int
	root   *stride.Mutable[T]
}

// New wraps data as an interleaved buffer with the given channel count.
// The data is not copied.
//
// Errors:
//   - ErrBadChannels if channels < 1.
//   - ErrRaggedFrames if len(data) % channels != 0.
//
// Complexity: O(1).
func New[T any](data []T, channels int) (*Buffer[T], error) {
	if channels < 1 {
		return nil, bufferErrorf(ctxNew, ErrBadChannels, len(data), channels)
	}
	if len(data)%channels != 0 {
		return nil, bufferErrorf(ctxNew, ErrRaggedFrames, len(data), channels)
	}

	return &Buffer[T]{
		data:   data,
		ch:     channels,
		frames: len(data) / channels,
		root:   stride.FromSliceMut(data),
	}, nil
}

// Channels returns the channel count.
func (b *Buffer[T]) Channels() int { return b.ch }

// Frames returns the number of frames (samples per channel).
func (b *Buffer[T]) Frames() int { return b.frames }

// Len returns the total sample count, Channels()*Frames().
func (b *Buffer[T]) Len() int { return len(b.data) }

// Channel returns a read view of channel c: offset c, stride Channels().
//
// Creation fails with stride.ErrBorrowed while a mutable view is lent.
// The view itself is not tracked afterwards; WithChannel keeps lends out
// for as long as it is read.
func (b *Buffer[T]) Channel(c int) (stride.View[T], error) {
	if c < 0 || c >= b.ch {
		return stride.View[T]{}, bufferErrorf(ctxChannel, ErrOutOfRange, c)
	}
	v, err := b.view(c, b.frames, b.ch)
	if err != nil {
		return stride.View[T]{}, bufferErrorf(ctxChannel, err, c)
	}

	return v, nil
}

// Frame returns a read view of frame f: the Channels() contiguous samples
// starting at f*Channels(). Same borrow rules as Channel.
func (b *Buffer[T]) Frame(f int) (stride.View[T], error) {
	if f < 0 || f >= b.frames {
		return stride.View[T]{}, bufferErrorf(ctxFrame, ErrOutOfRange, f)
	}
	v, err := b.view(f*b.ch, b.ch, 1)
	if err != nil {
		return stride.View[T]{}, bufferErrorf(ctxFrame, err, f)
	}

	return v, nil
}

// WithChannel calls fn with a read view of channel c under a shared
// borrow. Reads nest; lends and Interleave fail with stride.ErrBorrowed
// until fn returns.
func (b *Buffer[T]) WithChannel(c int, fn func(ch stride.View[T])) error {
	if c < 0 || c >= b.ch {
		return bufferErrorf(ctxWithChannel, ErrOutOfRange, c)
	}
	if err := b.withView(c, b.frames, b.ch, fn); err != nil {
		return bufferErrorf(ctxWithChannel, err, c)
	}

	return nil
}

// WithFrame is WithChannel for frame f.
func (b *Buffer[T]) WithFrame(f int, fn func(frame stride.View[T])) error {
	if f < 0 || f >= b.frames {
		return bufferErrorf(ctxWithFrame, ErrOutOfRange, f)
	}
	if err := b.withView(f*b.ch, b.ch, 1, fn); err != nil {
		return bufferErrorf(ctxWithFrame, err, f)
	}

	return nil
}

// view builds a read view under a momentary shared borrow of root.
func (b *Buffer[T]) view(off, n, step int) (stride.View[T], error) {
	var v stride.View[T]
	err := b.withView(off, n, step, func(in stride.View[T]) { v = in })

	return v, err
}

func (b *Buffer[T]) withView(off, n, step int, fn func(stride.View[T])) error {
	var verr error
	err := b.root.WithReadOnly(func(stride.View[T]) {
		var v stride.View[T]
		if v, verr = stride.New(b.data, off, n, step); verr == nil {
			fn(v)
		}
	})
	if err != nil {
		return err
	}

	return verr
}

// ChannelMut lends a mutable view of channel c to fn. The handle and
// everything derived from it expire when fn returns.
//
// Errors:
//   - ErrOutOfRange; stride.ErrBorrowed if another view is lent; fn's error.
func (b *Buffer[T]) ChannelMut(c int, fn func(ch *stride.Mutable[T]) error) error {
	if c < 0 || c >= b.ch {
		return bufferErrorf(ctxChannelMut, ErrOutOfRange, c)
	}
	err := b.root.Reborrow(func(tmp *stride.Mutable[T]) error {
		chans, err := tmp.Substrides(b.ch)
		if err != nil {
			return err
		}
		return fn(chans[c])
	})
	if err != nil {
		return bufferErrorf(ctxChannelMut, err, c)
	}

	return nil
}

// FrameMut lends a mutable view of frame f to fn.
// Same scoping and errors as ChannelMut.
func (b *Buffer[T]) FrameMut(f int, fn func(frame *stride.Mutable[T]) error) error {
	if f < 0 || f >= b.frames {
		return bufferErrorf(ctxFrameMut, ErrOutOfRange, f)
	}
	err := b.root.Reborrow(func(tmp *stride.Mutable[T]) error {
		frame, err := tmp.Sub(f*b.ch, (f+1)*b.ch)
		if err != nil {
			return err
		}
		return fn(frame)
	})
	if err != nil {
		return bufferErrorf(ctxFrameMut, err, f)
	}

	return nil
}

// ChannelsMut lends every channel at once; chans[c] is channel c. The
// handles are disjoint and may be processed concurrently.
func (b *Buffer[T]) ChannelsMut(fn func(chans []*stride.Mutable[T]) error) error {
	err := b.root.Reborrow(func(tmp *stride.Mutable[T]) error {
		chans, err := tmp.Substrides(b.ch)
		if err != nil {
			return err
		}
		return fn(chans)
	})
	if err != nil {
		return bufferErrorf(ctxChannelsMut, err)
	}

	return nil
}

// Deinterleave copies channel c into dst[c] for every channel.
//
// Errors:
//   - ErrLengthMismatch unless len(dst) == Channels() and every
//     len(dst[c]) == Frames(); nothing is copied in that case.
//   - stride.ErrBorrowed while a mutable view is lent.
//
// Complexity: O(Len()).
func (b *Buffer[T]) Deinterleave(dst [][]T) error {
	if len(dst) != b.ch {
		return bufferErrorf(ctxDeinterleave, ErrLengthMismatch, len(dst))
	}
	for c := range dst {
		if len(dst[c]) != b.frames {
			return bufferErrorf(ctxDeinterleave, ErrLengthMismatch, c, len(dst[c]))
		}
	}
	err := b.root.WithReadOnly(func(v stride.View[T]) {
		chans, _ := v.Substrides(b.ch)
		for c, chv := range chans {
			for f, x := range chv.All() {
				dst[c][f] = x
			}
		}
	})
	if err != nil {
		return bufferErrorf(ctxDeinterleave, err)
	}

	return nil
}

// Interleave writes src[c] into channel c for every channel.
//
// Errors:
//   - ErrLengthMismatch unless len(src) == Channels() and every
//     src[c].Len() == Frames(); nothing is written in that case.
//   - stride.ErrBorrowed while a mutable view is lent.
//
// Complexity: O(Len()).
func (b *Buffer[T]) Interleave(src ...stride.View[T]) error {
	if len(src) != b.ch {
		return bufferErrorf(ctxInterleave, ErrLengthMismatch, len(src))
	}
	for c, s := range src {
		if s.Len() != b.frames {
			return bufferErrorf(ctxInterleave, ErrLengthMismatch, c, s.Len())
		}
	}
	err := b.root.Reborrow(func(tmp *stride.Mutable[T]) error {
		chans, err := tmp.Substrides(b.ch)
		if err != nil {
			return err
		}
		for c, ch := range chans {
			if err = ch.CopyFrom(src[c]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return bufferErrorf(ctxInterleave, err)
	}

	return nil
}
