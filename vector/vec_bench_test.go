package vector

import "testing"

func BenchmarkVec3Add(b *testing.B) {
	u := NewVec3(1.0, 2.0, 3.0)
	v := NewVec3(0.5, 0.25, 0.125)

	for range b.N {
		u = u.Add(v)
	}
	_ = u
}

func BenchmarkNormalize3(b *testing.B) {
	v := NewVec3(1.0, 2.0, 3.0)
	var out Vec3[float64]

	for range b.N {
		out = Normalize3(v)
	}
	_ = out
}

func BenchmarkNormalize4Float32(b *testing.B) {
	v := NewVec4[float32](1, 2, 3, 4)
	var out Vec4[float32]

	for range b.N {
		out = Normalize4(v)
	}
	_ = out
}
