package function_test

import (
	"fmt"
	"math"

	"github.com/charmingruby/pointfree/function"
)

func ExampleFunction_After() {
	addSix := function.Of(func(x int) int { return x + 6 })

	h, _ := addSix.After(func(x int) int { return 2 * x })
	fmt.Println(h.(function.Function)(5))

	v, _ := addSix.After(5)
	fmt.Println(v)
	// Output:
	// 16
	// 11
}

func ExampleFunction_Before() {
	half := function.Of(func(x float64) float64 { return x / 2 })
	h, _ := half.Before(math.Sqrt)
	fmt.Println(h.(function.Function)(32))
	// Output:
	// 4
}

func ExampleSum() {
	square := function.Of(func(x int) int { return x * x })
	total, _ := function.Sum(square, function.Identity, function.Constant(1))
	fmt.Println(total(3))
	// Output:
	// 13
}
