//go:build !nolegacy && !macroed

package manyvecs

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/manyvecs/internal/testutil"
)

func TestRootGenericAccess(t *testing.T) {
	v := NewVec2(2.0, -0.5).AddScalar(1.0)
	if !v.Equal(NewVec2(3.0, 0.5)) {
		t.Fatalf("AddScalar = %v, want Vec2(3, 0.5)", v)
	}

	if got := FromArray2([2]float64{2, 3}); got != NewVec2(2.0, 3.0) {
		t.Fatalf("FromArray2 = %v", got)
	}

	testutil.RequireSqrtNearlyEqual(t, Magnitude3(NewVec3(1.0, 0.0, 0.0)), 1, 0)

	z := Normalize2(NewVec2(0.0, 0.0))
	if !math.IsNaN(z.X()) || !math.IsNaN(z.Y()) {
		t.Fatalf("Normalize2(0) = %v, want NaN components", z)
	}
}

func TestRootAliases(t *testing.T) {
	var f Vec2f = NewVec2[float32](1, 2)
	var d Vec3d = NewVec3(1.0, 2.0, 2.0)
	var u Vec4u = NewVec4[uint](1, 2, 3, 4)
	var i Vec2i = NewVec2(-1, 1)

	if f.Y() != 2 {
		t.Fatalf("Vec2f.Y = %v", f.Y())
	}
	testutil.RequireSqrtNearlyEqual(t, Magnitude3(d), 3, 0)
	if u.MagnitudeSq() != 30 {
		t.Fatalf("Vec4u.MagnitudeSq = %v, want 30", u.MagnitudeSq())
	}
	if i.Add(NewVec2(1, -1)) != (Vec2i{}) {
		t.Fatalf("Vec2i sum = %v, want zero", i.Add(NewVec2(1, -1)))
	}
}

func TestRootFromSlice(t *testing.T) {
	if _, err := FromSlice3([]int{1, 2}); !errors.Is(err, ErrDimension) {
		t.Fatalf("FromSlice3 error = %v, want ErrDimension", err)
	}
	v, err := FromSlice4([]float32{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("FromSlice4: %v", err)
	}
	if v.W() != 4 {
		t.Fatalf("W = %v, want 4", v.W())
	}
	got := Normalize4(NewVec4(0.0, 0.0, 0.0, 2.0))
	testutil.RequireSqrtSliceNearlyEqual(t, got.Slice(), []float64{0, 0, 0, 1}, 0)
}
