//go:build !fastmath

package fixedvec_test

import (
	"fmt"

	"github.com/cwbudde/manyvecs/fixedvec"
)

func ExampleVec3f64_Normalize() {
	v := fixedvec.NewVec3f64(0, 3, 4)
	fmt.Println(v.Magnitude(), v.Normalize())
	fmt.Println(fixedvec.Vec3f64{}.Normalize())
	// Output:
	// 5 Vec3f64(0, 0.6, 0.8)
	// Vec3f64(NaN, NaN, NaN)
}
