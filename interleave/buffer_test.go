package interleave_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/strided/interleave"
	"github.com/katalvlaran/strided/stride"
	"github.com/stretchr/testify/require"
)

// stereo returns L0 R0 L1 R1 ... with L = 1..n and R = -1..-n.
func stereo(n int) []int {
	out := make([]int, 0, 2*n)
	for f := 1; f <= n; f++ {
		out = append(out, f, -f)
	}

	return out
}

func mustBuffer[T any](t *testing.T, data []T, ch int) *interleave.Buffer[T] {
	t.Helper()
	b, err := interleave.New(data, ch)
	require.NoError(t, err)

	return b
}

// TestNewRejects checks the shape validation.
func TestNewRejects(t *testing.T) {
	_, err := interleave.New([]int{1, 2, 3}, 0)
	require.ErrorIs(t, err, interleave.ErrBadChannels)

	_, err = interleave.New([]int{1, 2, 3}, 2)
	require.ErrorIs(t, err, interleave.ErrRaggedFrames)
	require.EqualError(t, err, "Buffer.New(3,2): interleave: data length is not a whole number of frames")

	b, err := interleave.New([]int{}, 4)
	require.NoError(t, err)
	require.Equal(t, 0, b.Frames())
	ch, err := b.Channel(3)
	require.NoError(t, err)
	require.True(t, ch.IsEmpty())
}

// TestChannelAndFrameViews checks the read views.
func TestChannelAndFrameViews(t *testing.T) {
	b := mustBuffer(t, stereo(3), 2)
	require.Equal(t, 2, b.Channels())
	require.Equal(t, 3, b.Frames())
	require.Equal(t, 6, b.Len())

	left, err := b.Channel(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, left.Collect())
	require.Equal(t, 2, left.Stride())

	right, err := b.Channel(1)
	require.NoError(t, err)
	require.Equal(t, []int{-1, -2, -3}, right.Collect())

	frame, err := b.Frame(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, -2}, frame.Collect())

	_, err = b.Channel(2)
	require.ErrorIs(t, err, interleave.ErrOutOfRange)
	_, err = b.Frame(-1)
	require.ErrorIs(t, err, interleave.ErrOutOfRange)
}

// TestChannelMut checks a lent channel writes only its own samples.
func TestChannelMut(t *testing.T) {
	data := stereo(3)
	b := mustBuffer(t, data, 2)

	require.NoError(t, b.ChannelMut(1, func(ch *stride.Mutable[int]) error {
		return ch.Fill(0)
	}))
	require.Equal(t, []int{1, 0, 2, 0, 3, 0}, data)

	require.NoError(t, b.FrameMut(2, func(fr *stride.Mutable[int]) error {
		return fr.Swap(0, 1)
	}))
	require.Equal(t, []int{1, 0, 2, 0, 0, 3}, data)

	require.ErrorIs(t, b.ChannelMut(5, nil), interleave.ErrOutOfRange)
	require.ErrorIs(t, b.FrameMut(3, nil), interleave.ErrOutOfRange)
}

// TestLendIsExclusive checks a second lend and conversions fail while one is live.
func TestLendIsExclusive(t *testing.T) {
	b := mustBuffer(t, stereo(2), 2)
	dst := [][]int{make([]int, 2), make([]int, 2)}

	var kept *stride.Mutable[int]
	require.NoError(t, b.ChannelMut(0, func(ch *stride.Mutable[int]) error {
		kept = ch
		require.ErrorIs(t, b.ChannelMut(1, func(*stride.Mutable[int]) error { return nil }), stride.ErrBorrowed)
		require.ErrorIs(t, b.Deinterleave(dst), stride.ErrBorrowed)
		require.ErrorIs(t, b.Interleave(stride.FromSlice([]int{0, 0}), stride.FromSlice([]int{0, 0})), stride.ErrBorrowed)
		return nil
	}))
	require.ErrorIs(t, kept.Set(0, 9), stride.ErrExpired)
}

// TestReadViewsDuringLend checks read views are refused while a channel is
// lent, and a scoped read keeps writers out until it returns.
func TestReadViewsDuringLend(t *testing.T) {
	data := stereo(2)
	b := mustBuffer(t, data, 2)

	require.NoError(t, b.ChannelMut(0, func(ch *stride.Mutable[int]) error {
		_, err := b.Channel(1)
		require.ErrorIs(t, err, stride.ErrBorrowed)
		require.EqualError(t, err, "Buffer.Channel(1): Mutable.AsReadOnly(): stride: view is borrowed")
		_, err = b.Frame(0)
		require.ErrorIs(t, err, stride.ErrBorrowed)
		err = b.WithFrame(0, func(stride.View[int]) { t.Fatal("fn must not run during a lend") })
		require.ErrorIs(t, err, stride.ErrBorrowed)
		return ch.Set(1, 20)
	}))

	require.NoError(t, b.WithChannel(0, func(left stride.View[int]) {
		require.Equal(t, []int{1, 20}, left.Collect())
		err := b.FrameMut(0, func(*stride.Mutable[int]) error { return nil })
		require.ErrorIs(t, err, stride.ErrBorrowed)
		require.ErrorIs(t, b.Interleave(left, left), stride.ErrBorrowed)

		// reads nest
		require.NoError(t, b.WithFrame(1, func(fr stride.View[int]) {
			require.Equal(t, []int{20, -2}, fr.Collect())
		}))
		right, err := b.Channel(1)
		require.NoError(t, err)
		require.Equal(t, []int{-1, -2}, right.Collect())
	}))

	require.NoError(t, b.FrameMut(0, func(fr *stride.Mutable[int]) error { return fr.Fill(0) }))
	require.Equal(t, []int{0, 0, 20, -2}, data)

	err := b.WithChannel(2, nil)
	require.ErrorIs(t, err, interleave.ErrOutOfRange)
	require.EqualError(t, err, "Buffer.WithChannel(2): interleave: index out of range")
	require.ErrorIs(t, b.WithFrame(2, nil), interleave.ErrOutOfRange)
}

// TestChannelsMutDisjoint fills every channel with its own index.
func TestChannelsMutDisjoint(t *testing.T) {
	data := make([]int, 3*4)
	b := mustBuffer(t, data, 3)

	require.NoError(t, b.ChannelsMut(func(chans []*stride.Mutable[int]) error {
		require.Len(t, chans, 3)
		var errs []error
		for c, ch := range chans {
			errs = append(errs, ch.Fill(c))
		}
		return errors.Join(errs...)
	}))
	require.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2}, data)

	boom := errors.New("boom")
	err := b.ChannelsMut(func([]*stride.Mutable[int]) error { return boom })
	require.ErrorIs(t, err, boom)
}

// TestDeinterleaveInterleaveRoundTrip checks the two conversions invert each other.
func TestDeinterleaveInterleaveRoundTrip(t *testing.T) {
	orig := stereo(4)
	b := mustBuffer(t, append([]int(nil), orig...), 2)

	dst := [][]int{make([]int, 4), make([]int, 4)}
	require.NoError(t, b.Deinterleave(dst))
	if diff := cmp.Diff([][]int{{1, 2, 3, 4}, {-1, -2, -3, -4}}, dst); diff != "" {
		t.Fatalf("Deinterleave mismatch (-want +got):\n%s", diff)
	}

	out := mustBuffer(t, make([]int, 8), 2)
	require.NoError(t, out.Interleave(stride.FromSlice(dst[0]), stride.FromSlice(dst[1])))
	got, err := out.Frame(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, -1}, got.Collect())

	var all []int
	for f := 0; f < out.Frames(); f++ {
		fr, _ := out.Frame(f)
		all = append(all, fr.Collect()...)
	}
	if diff := cmp.Diff(orig, all); diff != "" {
		t.Fatalf("Interleave mismatch (-want +got):\n%s", diff)
	}
}

// TestConversionLengthChecks checks nothing is touched on a shape mismatch.
func TestConversionLengthChecks(t *testing.T) {
	data := stereo(2)
	b := mustBuffer(t, data, 2)

	require.ErrorIs(t, b.Deinterleave([][]int{make([]int, 2)}), interleave.ErrLengthMismatch)
	err := b.Deinterleave([][]int{make([]int, 2), make([]int, 3)})
	require.ErrorIs(t, err, interleave.ErrLengthMismatch)
	require.EqualError(t, err, "Buffer.Deinterleave(1,3): interleave: length mismatch")

	err = b.Interleave(stride.FromSlice([]int{7, 7}), stride.FromSlice([]int{7}))
	require.ErrorIs(t, err, interleave.ErrLengthMismatch)
	require.Equal(t, stereo(2), data)
}

// TestInterleaveFromStridedSource writes channels from a strided view of another buffer.
func TestInterleaveFromStridedSource(t *testing.T) {
	src := mustBuffer(t, []float32{1, 10, 100, 2, 20, 200}, 3) // three channels
	dst := mustBuffer(t, make([]float32, 4), 2)

	hi, _ := src.Channel(2)
	lo, _ := src.Channel(0)
	require.NoError(t, dst.Interleave(hi, lo))

	f0, _ := dst.Frame(0)
	f1, _ := dst.Frame(1)
	require.Equal(t, []float32{100, 1}, f0.Collect())
	require.Equal(t, []float32{200, 2}, f1.Collect())
}
