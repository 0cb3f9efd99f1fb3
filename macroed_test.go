//go:build macroed && nolegacy

package manyvecs

import (
	"testing"

	"github.com/cwbudde/manyvecs/fixedvec"
	"github.com/cwbudde/manyvecs/internal/testutil"
)

func TestRootGeneratedAccess(t *testing.T) {
	var v Vec2 = fixedvec.Vec2f32{X: 1, Y: 2}
	if v != NewVec2f32(1, 2) {
		t.Fatalf("Vec2 = %v, want Vec2f32(1, 2)", v)
	}

	sum := NewVec2(2, -0.5).AddScalar(1)
	if sum != (Vec2{X: 3, Y: 0.5}) {
		t.Fatalf("AddScalar = %v", sum)
	}
	testutil.RequireSqrtNearlyEqual(t, NewVec3f64(1, 0, 0).Magnitude(), 1, 0)
	if s := NewVec4i(1, 2, 3, 4).String(); s != "Vec4i(1, 2, 3, 4)" {
		t.Fatalf("String = %q", s)
	}
}
