package batch_test

import (
	"fmt"

	"github.com/cwbudde/manyvecs/batch"
	"github.com/cwbudde/manyvecs/vector"
)

func ExampleMagnitudes2() {
	vs := []vector.Vec2[float64]{
		vector.NewVec2(3.0, 4.0),
		vector.NewVec2(5.0, 12.0),
	}
	dst := make([]float64, len(vs))
	batch.Magnitudes2(dst, vs)
	fmt.Printf("%.1f %.1f\n", dst[0], dst[1])
	// Output:
	// 5.0 13.0
}
