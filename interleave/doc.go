// SPDX-License-Identifier: MIT

// Package interleave views an interleaved multi-channel sample buffer one
// channel or one frame at a time.
//
// Interleaved audio (and packed pixel) data stores channel c of frame f at
// f*channels + c, so a channel is a strided line through the buffer:
//
//	L R L R L R   channels=2, frames=3
//	Channel(0) = offset 0, stride 2  -> L L L
//	Channel(1) = offset 1, stride 2  -> R R R
//	Frame(1)   = offset 2, stride 1  -> L R
//
// Buffer hands out read views directly and lends mutable views to a
// callback (ChannelMut, FrameMut, ChannelsMut). While a mutable view is lent
// the buffer refuses other lends and Deinterleave/Interleave with
// stride.ErrBorrowed; handles used after the callback fail with
// stride.ErrExpired.
//
// Deinterleave and Interleave convert between the interleaved buffer and
// one slice per channel.
package interleave
