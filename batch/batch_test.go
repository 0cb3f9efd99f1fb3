package batch

import (
	"math"
	"testing"

	"github.com/cwbudde/manyvecs/internal/testutil"
	"github.com/cwbudde/manyvecs/vector"
)

func randomVec2s(seed int64, n int) []vector.Vec2[float64] {
	c := testutil.RandomComponents(seed, 100, 2*n)
	out := make([]vector.Vec2[float64], n)
	for i := range out {
		out[i] = vector.NewVec2(c[2*i], c[2*i+1])
	}
	return out
}

func randomVec3s(seed int64, n int) []vector.Vec3[float64] {
	c := testutil.RandomComponents(seed, 100, 3*n)
	out := make([]vector.Vec3[float64], n)
	for i := range out {
		out[i] = vector.NewVec3(c[3*i], c[3*i+1], c[3*i+2])
	}
	return out
}

func randomVec4s(seed int64, n int) []vector.Vec4[float64] {
	c := testutil.RandomComponents(seed, 100, 4*n)
	out := make([]vector.Vec4[float64], n)
	for i := range out {
		out[i] = vector.NewVec4(c[4*i], c[4*i+1], c[4*i+2], c[4*i+3])
	}
	return out
}

// Sizes that exercise both the SIMD body and the scalar tail of the kernels.
var sizes = []int{1, 2, 3, 5, 7, 16, 33}

func TestMagnitudesMatchScalar(t *testing.T) {
	for _, n := range sizes {
		v2 := randomVec2s(int64(n), n)
		v3 := randomVec3s(int64(n)+100, n)
		v4 := randomVec4s(int64(n)+200, n)

		got := make([]float64, n)
		want := make([]float64, n)

		Magnitudes2(got, v2)
		for i, v := range v2 {
			want[i] = vector.Magnitude2(v)
		}
		testutil.RequireSqrtSliceNearlyEqual(t, got, want, 1e-9)

		Magnitudes3(got, v3)
		for i, v := range v3 {
			want[i] = vector.Magnitude3(v)
		}
		testutil.RequireSqrtSliceNearlyEqual(t, got, want, 1e-9)

		Magnitudes4(got, v4)
		for i, v := range v4 {
			want[i] = vector.Magnitude4(v)
		}
		testutil.RequireSqrtSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestNormalizeMatchesScalar(t *testing.T) {
	for _, n := range sizes {
		v2 := randomVec2s(int64(n), n)
		out2 := make([]vector.Vec2[float64], n)
		Normalize2(out2, v2)
		for i, v := range v2 {
			testutil.RequireSqrtSliceNearlyEqual(t, out2[i].Slice(), vector.Normalize2(v).Slice(), 1e-12)
		}

		v3 := randomVec3s(int64(n), n)
		out3 := make([]vector.Vec3[float64], n)
		Normalize3(out3, v3)
		for i, v := range v3 {
			testutil.RequireSqrtSliceNearlyEqual(t, out3[i].Slice(), vector.Normalize3(v).Slice(), 1e-12)
		}

		v4 := randomVec4s(int64(n), n)
		Normalize4(v4, v4)
		mags := make([]float64, n)
		Magnitudes4(mags, v4)
		ones := make([]float64, n)
		for i := range ones {
			ones[i] = 1
		}
		d, err := testutil.MaxAbsDiff(mags, ones)
		if err != nil {
			t.Fatalf("MaxAbsDiff: %v", err)
		}
		if d > 1e-9+testutil.SqrtRelTol {
			t.Fatalf("n=%d: normalized magnitudes deviate from 1 by %v", n, d)
		}
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	vs := []vector.Vec3[float64]{vector.NewVec3(0.0, 0.0, 0.0), vector.NewVec3(0.0, 3.0, 4.0)}
	Normalize3(vs, vs)

	testutil.RequireNonFinite(t, vs[0].Slice())
	testutil.RequireSqrtSliceNearlyEqual(t, vs[1].Slice(), []float64{0, 0.6, 0.8}, 1e-15)
}

func TestScale(t *testing.T) {
	for _, n := range sizes {
		v2 := randomVec2s(int64(n), n)
		out2 := make([]vector.Vec2[float64], n)
		Scale2(out2, v2, -2.5)
		for i, v := range v2 {
			testutil.RequireSliceNearlyEqual(t, out2[i].Slice(), v.MulScalar(-2.5).Slice(), 1e-12)
		}

		v3 := randomVec3s(int64(n), n)
		out3 := make([]vector.Vec3[float64], n)
		Scale3(out3, v3, 0.5)
		for i, v := range v3 {
			testutil.RequireSliceNearlyEqual(t, out3[i].Slice(), v.MulScalar(0.5).Slice(), 1e-12)
		}

		v4 := randomVec4s(int64(n), n)
		out4 := make([]vector.Vec4[float64], n)
		Scale4(out4, v4, 3)
		for i, v := range v4 {
			testutil.RequireSliceNearlyEqual(t, out4[i].Slice(), v.MulScalar(3).Slice(), 1e-12)
		}
	}
}

func TestAdd(t *testing.T) {
	for _, n := range sizes {
		a2, b2 := randomVec2s(1, n), randomVec2s(2, n)
		out2 := make([]vector.Vec2[float64], n)
		Add2(out2, a2, b2)
		for i := range a2 {
			testutil.RequireSliceNearlyEqual(t, out2[i].Slice(), a2[i].Add(b2[i]).Slice(), 1e-12)
		}

		a3, b3 := randomVec3s(3, n), randomVec3s(4, n)
		out3 := make([]vector.Vec3[float64], n)
		Add3(out3, a3, b3)
		for i := range a3 {
			testutil.RequireSliceNearlyEqual(t, out3[i].Slice(), a3[i].Add(b3[i]).Slice(), 1e-12)
		}

		a4, b4 := randomVec4s(5, n), randomVec4s(6, n)
		want := make([]vector.Vec4[float64], n)
		for i := range a4 {
			want[i] = a4[i].Add(b4[i])
		}
		Add4(a4, a4, b4)
		for i := range a4 {
			testutil.RequireSliceNearlyEqual(t, a4[i].Slice(), want[i].Slice(), 1e-12)
		}
	}
}

func TestEmptyInputs(t *testing.T) {
	Magnitudes2(nil, nil)
	Magnitudes3(nil, nil)
	Magnitudes4(nil, nil)
	Normalize2(nil, nil)
	Scale3(nil, nil, 2)
	Add4(nil, nil, nil)
}

func TestLengthMismatchPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"magnitudes", func() { Magnitudes2(make([]float64, 1), randomVec2s(1, 2)) }},
		{"normalize", func() { Normalize3(make([]vector.Vec3[float64], 3), randomVec3s(1, 2)) }},
		{"scale", func() { Scale4(nil, randomVec4s(1, 1), 2) }},
		{"add", func() { Add2(make([]vector.Vec2[float64], 2), randomVec2s(1, 2), randomVec2s(2, 1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic, got none")
				}
			}()
			tt.fn()
		})
	}
}

func TestPlanesReuse(t *testing.T) {
	p, buf := getPlanes(3, 4)
	for i, c := range p {
		if len(c) != 4 || cap(c) != 4 {
			t.Fatalf("plane %d: len %d cap %d, want 4/4", i, len(c), cap(c))
		}
		c[0] = math.Pi
	}
	putPlanes(buf)

	p, buf = getPlanes(2, 2)
	defer putPlanes(buf)
	if len(p) != 2 || len(p[1]) != 2 {
		t.Fatalf("got %d planes of %d", len(p), len(p[1]))
	}
}
