package stride_test

import (
	"fmt"

	"github.com/katalvlaran/strided/stride"
)

// ExampleNew views every other element of a buffer, then re-strides and
// reverses the view without copying.
func ExampleNew() {
	buf := []int{1, 2, 3, 4, 5, 6}

	odd, err := stride.New(buf, 0, 3, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	every2, _ := odd.StepBy(2)

	fmt.Println(odd)
	fmt.Println(every2)
	fmt.Println(odd.Reversed())
	// Output:
	// [1 3 5]
	// [1 5]
	// [5 3 1]
}

// ExampleMutable_SplitAt hands out two disjoint mutable halves.
func ExampleMutable_SplitAt() {
	buf := []int{1, 2, 3, 4}
	left, right, err := stride.FromSliceMut(buf).SplitAt(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = right.Set(0, 10)

	fmt.Println(left, right)
	fmt.Println(buf)
	// Output:
	// [1 2] [10 4]
	// [1 2 10 4]
}

// ExampleView_column reads one column of a 3×3 row-major matrix.
func ExampleView_column() {
	m := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	col1, _ := stride.New(m, 1, 3, 3)
	for i, x := range col1.All() {
		fmt.Printf("row %d: %g\n", i, x)
	}
	// Output:
	// row 0: 2
	// row 1: 5
	// row 2: 8
}

// ExampleMutable_Reborrow lends a handle temporarily and keeps using it.
func ExampleMutable_Reborrow() {
	buf := []int{1, 2, 3, 4}
	m := stride.FromSliceMut(buf)

	_ = m.Reborrow(func(tmp *stride.Mutable[int]) error {
		even, _, err := tmp.Substrides2()
		if err != nil {
			return err
		}
		return even.Fill(0)
	})
	_ = m.Set(3, 40)

	fmt.Println(buf)
	// Output:
	// [0 2 0 40]
}
