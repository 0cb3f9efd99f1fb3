//go:build !fastmath

package vector_test

import (
	"fmt"

	"github.com/cwbudde/manyvecs/vector"
)

func ExampleMagnitude3() {
	fmt.Println(vector.Magnitude3(vector.NewVec3(1.0, 0.0, 0.0)))
	// Output:
	// 1
}

func ExampleNormalize2() {
	fmt.Println(vector.Normalize2(vector.NewVec2(3.0, 4.0)))
	fmt.Println(vector.Normalize2(vector.NewVec2(0.0, 0.0)))
	// Output:
	// Vec2(0.6, 0.8)
	// Vec2(NaN, NaN)
}
