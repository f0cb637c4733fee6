package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-stream/window"
)

func ExampleMin() {
	m, _ := window.NewMin[int](3)

	for _, x := range []int{5, 3, 8, 9, 1, 4} {
		v, _ := m.Filter(x)
		fmt.Print(v, " ")
	}
	fmt.Println()

	// Output:
	// 5 3 3 3 1 1
}

func ExampleBounds() {
	b, _ := window.NewBounds[float64](2)

	for _, x := range []float64{1, 4, 2} {
		r, _ := b.Filter(x)
		fmt.Printf("[%g, %g] ", r.Min, r.Max)
	}
	fmt.Println()

	// Output:
	// [1, 1] [1, 4] [2, 4]
}
