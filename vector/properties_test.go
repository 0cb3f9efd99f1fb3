package vector

import (
	"testing"

	"github.com/cwbudde/manyvecs/internal/testutil"
)

func TestAddSubRoundTripIntegers(t *testing.T) {
	c := testutil.RandomIntegers(1, 1<<20, 400)

	for i := 0; i+7 < len(c); i += 8 {
		u := NewVec4(c[i], c[i+1], c[i+2], c[i+3])
		v := NewVec4(c[i+4], c[i+5], c[i+6], c[i+7])

		sum := u.Add(v)
		want := NewVec4(c[i]+c[i+4], c[i+1]+c[i+5], c[i+2]+c[i+6], c[i+3]+c[i+7])
		if sum != want {
			t.Fatalf("%v + %v = %v, want %v", u, v, sum, want)
		}
		if got := sum.Sub(v); got != u {
			t.Fatalf("(%v + %v) - %v = %v", u, v, v, got)
		}
	}
}

func TestMulScalarIdentity(t *testing.T) {
	c := testutil.RandomComponents(2, 1e6, 300)

	for i := 0; i+2 < len(c); i += 3 {
		v := NewVec3(c[i], c[i+1], c[i+2])
		if got := v.MulScalar(1); got != v {
			t.Fatalf("%v * 1 = %v", v, got)
		}

		s := c[(i+5)%len(c)]
		want := NewVec3(c[i]*s, c[i+1]*s, c[i+2]*s)
		if got := v.MulScalar(s); got != want {
			t.Fatalf("%v * %v = %v, want %v", v, s, got, want)
		}
	}
}

func TestTupleRoundTrip(t *testing.T) {
	c := testutil.RandomComponents(3, 100, 200)

	for i := 0; i+3 < len(c); i += 4 {
		a2 := [2]float64{c[i], c[i+1]}
		a3 := [3]float64{c[i], c[i+1], c[i+2]}
		a4 := [4]float64{c[i], c[i+1], c[i+2], c[i+3]}

		if got := FromArray2(a2).Array(); got != a2 {
			t.Fatalf("Vec2 round trip %v -> %v", a2, got)
		}
		if got := FromArray3(a3).Array(); got != a3 {
			t.Fatalf("Vec3 round trip %v -> %v", a3, got)
		}
		if got := FromArray4(a4).Array(); got != a4 {
			t.Fatalf("Vec4 round trip %v -> %v", a4, got)
		}
	}
}

func TestMagnitudeProperties(t *testing.T) {
	c := testutil.RandomComponents(4, 1e3, 400)

	for i := 0; i+3 < len(c); i += 4 {
		v2 := NewVec2(c[i], c[i+1])
		v3 := NewVec3(c[i], c[i+1], c[i+2])
		v4 := NewVec4(c[i], c[i+1], c[i+2], c[i+3])

		if m := Magnitude2(v2); m < 0 {
			t.Fatalf("Magnitude2(%v) = %v < 0", v2, m)
		}
		if m := Magnitude3(v3); m < 0 {
			t.Fatalf("Magnitude3(%v) = %v < 0", v3, m)
		}
		if m := Magnitude4(v4); m < 0 {
			t.Fatalf("Magnitude4(%v) = %v < 0", v4, m)
		}

		testutil.RequireSqrtNearlyEqual(t, Magnitude2(Normalize2(v2)), 1, 1e-9)
		testutil.RequireSqrtNearlyEqual(t, Magnitude3(Normalize3(v3)), 1, 1e-9)
		testutil.RequireSqrtNearlyEqual(t, Magnitude4(Normalize4(v4)), 1, 1e-9)
		testutil.RequireFinite(t, Normalize4(v4).Slice())
	}
}
