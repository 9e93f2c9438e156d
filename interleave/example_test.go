package interleave_test

import (
	"fmt"

	"github.com/katalvlaran/strided/interleave"
	"github.com/katalvlaran/strided/stride"
)

// ExampleBuffer_ChannelMut halves the right channel of a stereo buffer.
func ExampleBuffer_ChannelMut() {
	samples := []float64{0.5, 0.8, 0.25, 0.6, 1, 0.4}
	b, _ := interleave.New(samples, 2)

	_ = b.ChannelMut(1, func(right *stride.Mutable[float64]) error {
		for _, p := range right.IterMut() {
			*p /= 2
		}
		return nil
	})

	left, _ := b.Channel(0)
	right, _ := b.Channel(1)
	fmt.Println(left)
	fmt.Println(right)
	// Output:
	// [0.5 0.25 1]
	// [0.4 0.3 0.2]
}
