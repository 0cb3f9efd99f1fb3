package fixedvec_test

import (
	"fmt"

	"github.com/cwbudde/manyvecs/fixedvec"
)

func ExampleVec2f32() {
	v := fixedvec.NewVec2f32(2.0, 3.0)

	v = v.AddScalar(1.0)
	v = v.MulScalar(2.0)
	v = v.SubScalar(2.0)
	v = v.DivScalar(4.0)

	fmt.Println(v)
	// Output:
	// Vec2f32(1, 1.5)
}

func ExampleVec2i_Generic() {
	v := fixedvec.NewVec2i(4, 6)
	fmt.Println(v.Perp(), v.Generic())
	// Output:
	// Vec2i(-6, 4) Vec2(4, 6)
}
