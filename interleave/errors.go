// SPDX-License-Identifier: MIT

package interleave

import "errors"

// Sentinel errors. Methods wrap them as "Buffer.Method(args): %w".
var (
	// ErrBadChannels is returned when the channel count is not positive.
	ErrBadChannels = errors.New("interleave: channels must be > 0")

	// ErrRaggedFrames is returned when len(data) is not a multiple of channels.
	ErrRaggedFrames = errors.New("interleave: data length is not a whole number of frames")

	// ErrOutOfRange indicates a channel or frame index outside the buffer.
	ErrOutOfRange = errors.New("interleave: index out of range")

	// ErrLengthMismatch indicates per-channel data whose count or length
	// does not match Channels()/Frames().
	ErrLengthMismatch = errors.New("interleave: length mismatch")
)
