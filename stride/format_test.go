package stride_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strided/stride"
	"github.com/stretchr/testify/require"
)

// TestViewFormatsLikeSlice checks every verb renders as the []T would.
func TestViewFormatsLikeSlice(t *testing.T) {
	odd, _ := stride.FromSlice([]int{1, 2, 3, 4, 5}).Substrides2()
	plain := []int{1, 3, 5}

	for _, format := range []string{"%v", "%d", "%x", "%3d", "%#v", "%+v"} {
		require.Equal(t, fmt.Sprintf(format, plain), fmt.Sprintf(format, odd), format)
	}
	require.Equal(t, "[1 3 5]", odd.String())

	fl := stride.FromSlice([]float64{1.5, 2.25})
	require.Equal(t, "[1.50 2.25]", fmt.Sprintf("%.2f", fl))

	var empty stride.View[int]
	require.Equal(t, "[]", empty.String())
}

// TestViewJoin checks the bracket-free rendering.
func TestViewJoin(t *testing.T) {
	for _, c := range []struct {
		in   []int
		want string
	}{
		{[]int{1, 2, 3, 4, 5}, "1, 3, 5"},
		{[]int{1, 2, 3}, "1, 3"},
		{[]int{1}, "1"},
		{[]int{}, ""},
	} {
		even, _ := stride.FromSlice(c.in).Substrides2()
		require.Equal(t, c.want, even.Join(", "))
	}
}

// TestMutableFormat checks readable and unreadable handles.
func TestMutableFormat(t *testing.T) {
	m := stride.FromSliceMut([]int{4, 5, 6})
	require.Equal(t, "[4 5 6]", fmt.Sprint(m))
	require.Equal(t, "[004 005 006]", fmt.Sprintf("%03d", m))

	var shown string
	require.NoError(t, m.ForEachMut(func(int, *int) bool {
		shown = m.String()
		return false
	}))
	require.Equal(t, "%!v(Mutable.AsReadOnly(): stride: view is borrowed)", shown)

	_, err := m.Reversed()
	require.NoError(t, err)
	require.Contains(t, m.String(), "view used after move")
}
