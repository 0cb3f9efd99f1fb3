//go:build fastmath

package vector

import (
	"math"
	"testing"

	"github.com/cwbudde/manyvecs/internal/fastmath"
	"github.com/cwbudde/manyvecs/internal/testutil"
)

func TestApproximateNormalizeStaysNearUnit(t *testing.T) {
	c := testutil.RandomComponents(11, 1e3, 4000)
	bound := 2 * fastmath.MaxRelError

	var worst float64
	for i := 0; i+3 < len(c); i += 4 {
		v2 := NewVec2(c[i], c[i+1])
		v3 := NewVec3(c[i], c[i+1], c[i+2])
		v4 := NewVec4(c[i], c[i+1], c[i+2], c[i+3])

		for _, m := range []float64{
			Magnitude2(Normalize2(v2)),
			Magnitude3(Normalize3(v3)),
			Magnitude4(Normalize4(v4)),
		} {
			worst = max(worst, math.Abs(m-1))
		}
	}

	if worst > bound {
		t.Fatalf("max |Magnitude(Normalize(v)) - 1| = %v, want <= %v", worst, bound)
	}
	t.Logf("max deviation from unit length: %v (bound %v)", worst, bound)
}

func TestApproximateMagnitudeRelativeError(t *testing.T) {
	tests := []struct {
		v    Vec3[float64]
		want float64
	}{
		{NewVec3(1.0, 2.0, 2.0), 3},
		{NewVec3(0.0, 3.0, 4.0), 5},
		{NewVec3(2.0, 3.0, 6.0), 7},
		{NewVec3(1.0, 1.0, 0.0), math.Sqrt2},
	}

	for _, tt := range tests {
		got := Magnitude3(tt.v)
		if rel := math.Abs(got-tt.want) / tt.want; rel > fastmath.MaxRelError {
			t.Errorf("Magnitude3(%v) = %v, relative error %v > %v", tt.v, got, rel, fastmath.MaxRelError)
		}
	}
}

func TestApproximateNormalizeZeroVector(t *testing.T) {
	testutil.RequireNonFinite(t, Normalize3(Vec3[float64]{}).Slice())
	testutil.RequireNonFinite(t, Normalize2(Vec2[float32]{}).Slice())
}
