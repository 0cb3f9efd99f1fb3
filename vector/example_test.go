package vector_test

import (
	"fmt"

	"github.com/cwbudde/manyvecs/vector"
)

func ExampleNewVec2() {
	v := vector.NewVec2[float32](2.0, -0.5)
	fmt.Println(v.X(), v.Y())
	fmt.Println(v.AddScalar(1.0))
	// Output:
	// 2 -0.5
	// Vec2(3, 0.5)
}

func ExampleVec2_Components() {
	v := vector.FromArray2([2]float64{2, 3})
	x, y := v.Components()
	fmt.Println(x, y, vector.NewVec2(v.Components()) == v)
	// Output:
	// 2 3 true
}
