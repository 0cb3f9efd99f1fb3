package batch

import (
	"testing"

	"github.com/cwbudde/manyvecs/vector"
)

func BenchmarkMagnitudes3(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"1K", 1024},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			vs := randomVec3s(1, testCase.size)
			dst := make([]float64, testCase.size)

			b.SetBytes(int64(testCase.size * 24)) // Vec3[float64] = 24 bytes
			b.ResetTimer()

			for range b.N {
				Magnitudes3(dst, vs)
			}
		})
	}
}

func BenchmarkMagnitudes3Scalar(b *testing.B) {
	vs := randomVec3s(1, 1024)
	dst := make([]float64, len(vs))

	b.SetBytes(int64(len(vs) * 24))
	b.ResetTimer()

	for range b.N {
		for i, v := range vs {
			dst[i] = vector.Magnitude3(v)
		}
	}
}
