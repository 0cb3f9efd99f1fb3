package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/manyvecs/internal/testutil"
)

func TestVec2Accessors(t *testing.T) {
	v := NewVec2(3.0, 6.8)

	if v.X() != 3.0 || v.Y() != 6.8 {
		t.Fatalf("NewVec2(3, 6.8) = (%v, %v)", v.X(), v.Y())
	}
}

func TestVec2ZeroValue(t *testing.T) {
	var v Vec2[uint16]
	if !v.Equal(NewVec2[uint16](0, 0)) {
		t.Fatalf("zero value = %v, want Vec2(0, 0)", v)
	}
}

func TestVec2Operators(t *testing.T) {
	a := NewVec2(2.0, 3.0)

	tests := []struct {
		name string
		got  Vec2[float64]
		want Vec2[float64]
	}{
		{"add", a.Add(NewVec2(1.0, 1.0)), NewVec2(3.0, 4.0)},
		{"sub", a.Sub(NewVec2(1.0, 1.0)), NewVec2(1.0, 2.0)},
		{"mul", a.Mul(NewVec2(2.0, 2.0)), NewVec2(4.0, 6.0)},
		{"div", a.Div(NewVec2(2.0, 2.0)), NewVec2(1.0, 1.5)},
		{"add scalar", NewVec2(2.0, -0.5).AddScalar(1.0), NewVec2(3.0, 0.5)},
		{"sub scalar", a.SubScalar(2), NewVec2(0.0, 1.0)},
		{"mul scalar", a.MulScalar(2), NewVec2(4.0, 6.0)},
		{"div scalar", a.DivScalar(4), NewVec2(0.5, 0.75)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec2OperatorsDoNotMutate(t *testing.T) {
	v := NewVec2(1, 2)
	_ = v.Add(NewVec2(10, 10))
	_ = v.MulScalar(5)

	if v != NewVec2(1, 2) {
		t.Fatalf("receiver changed to %v", v)
	}
}

func TestVec2IntegerDivisionByZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic, got none")
		}
	}()
	NewVec2(1, 2).DivScalar(0)
}

func TestVec2FloatDivisionByZero(t *testing.T) {
	v := NewVec2(1.0, -1.0).DivScalar(0)
	if !math.IsInf(v.X(), 1) || !math.IsInf(v.Y(), -1) {
		t.Fatalf("Vec2(1, -1) / 0 = %v, want (+Inf, -Inf)", v)
	}
}

func TestVec2Conversions(t *testing.T) {
	if got := FromArray2([2]float64{2.0, 3.0}); got != NewVec2(2.0, 3.0) {
		t.Fatalf("FromArray2 = %v, want Vec2(2, 3)", got)
	}

	a := [2]uint8{3, 5}
	if got := FromArray2(a).Array(); got != a {
		t.Fatalf("array round trip = %v, want %v", got, a)
	}

	v := NewVec2[int8](-4, 19)
	if got := NewVec2(v.Components()); got != v {
		t.Fatalf("components round trip = %v, want %v", got, v)
	}

	s := v.Slice()
	back, err := FromSlice2(s)
	if err != nil {
		t.Fatalf("FromSlice2 error: %v", err)
	}
	if back != v {
		t.Fatalf("slice round trip = %v, want %v", back, v)
	}
}

func TestFromSlice2LengthMismatch(t *testing.T) {
	for _, s := range [][]float32{nil, {8}, {1, 2, 3}} {
		_, err := FromSlice2(s)
		if !errors.Is(err, ErrDimension) {
			t.Errorf("FromSlice2(%v) error = %v, want ErrDimension", s, err)
		}
	}
}

func TestVec2MaxMinClamp(t *testing.T) {
	v := NewVec2(4, 7)

	if got := v.MaxScalar(5); got != NewVec2(5, 7) {
		t.Errorf("MaxScalar = %v", got)
	}
	if got := v.Max(NewVec2(6, 5)); got != NewVec2(6, 7) {
		t.Errorf("Max = %v", got)
	}
	if got := v.MinScalar(5); got != NewVec2(4, 5) {
		t.Errorf("MinScalar = %v", got)
	}
	if got := v.Min(NewVec2(6, 5)); got != NewVec2(4, 5) {
		t.Errorf("Min = %v", got)
	}
	if got := NewVec2(3, 6).ClampScalar(4, 8); got != NewVec2(4, 6) {
		t.Errorf("ClampScalar = %v", got)
	}
	if got := NewVec2(3.0, 6.0).Clamp(NewVec2(4.0, 4.0), NewVec2(8.0, 5.0)); got != NewVec2(4.0, 5.0) {
		t.Errorf("Clamp = %v", got)
	}
}

func TestVec2Magnitude(t *testing.T) {
	if got := NewVec2(2, 3).MagnitudeSq(); got != 13 {
		t.Errorf("MagnitudeSq = %v, want 13", got)
	}
	testutil.RequireSqrtNearlyEqual(t, Magnitude2(NewVec2(6.0, 8.0)), 10, 0)
	testutil.RequireSqrtNearlyEqual(t, Magnitude2(NewVec2[float32](-3, 4)), 5, 0)
}

func TestNormalize2(t *testing.T) {
	a := Normalize2(NewVec2(2.0, 4.0))
	b := Normalize2(NewVec2(4.0, 8.0))
	testutil.RequireSqrtSliceNearlyEqual(t, a.Slice(), b.Slice(), 1e-15)
	testutil.RequireSqrtNearlyEqual(t, Magnitude2(a), 1, 1e-12)
}

func TestNormalize2ZeroVector(t *testing.T) {
	testutil.RequireNonFinite(t, Normalize2(NewVec2(0.0, 0.0)).Slice())
	testutil.RequireNonFinite(t, Normalize2(NewVec2[float32](0, 0)).Slice())
}

func TestVec2FloorCeil(t *testing.T) {
	if got := Floor2(NewVec2(3.14159, 2.0)); got != NewVec2(3.0, 2.0) {
		t.Errorf("Floor2 = %v", got)
	}
	if got := Ceil2(NewVec2(3.14159, 6.0)); got != NewVec2(4.0, 6.0) {
		t.Errorf("Ceil2 = %v", got)
	}
	if got := Floor2(NewVec2[float32](-0.5, 1.5)); got != NewVec2[float32](-1, 1) {
		t.Errorf("Floor2(float32) = %v", got)
	}
}

func TestVec2Signed(t *testing.T) {
	if got := Perp(NewVec2(4, 6)); got != NewVec2(-6, 4) {
		t.Errorf("Perp = %v, want Vec2(-6, 4)", got)
	}
	if got := Neg2(NewVec2(5, -8)); got != NewVec2(-5, 8) {
		t.Errorf("Neg2 = %v, want Vec2(-5, 8)", got)
	}
}

func TestVec2Rem(t *testing.T) {
	if got := Rem2(NewVec2(2, 3), NewVec2(2, 2)); got != NewVec2(0, 1) {
		t.Errorf("Rem2 = %v, want Vec2(0, 1)", got)
	}
	if got := RemScalar2(NewVec2[uint](7, 9), 4); got != NewVec2[uint](3, 1) {
		t.Errorf("RemScalar2 = %v, want Vec2(3, 1)", got)
	}
}

func TestVec2String(t *testing.T) {
	tests := []struct {
		v    interface{ String() string }
		want string
	}{
		{NewVec2(4.1, 8.8), "Vec2(4.1, 8.8)"},
		{NewVec2[float32](4.1, 8.8), "Vec2(4.1, 8.8)"},
		{NewVec2(10, 5), "Vec2(10, 5)"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
