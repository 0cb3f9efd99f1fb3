package fixedvec

import (
	"errors"
	"testing"

	"github.com/cwbudde/manyvecs/internal/testutil"
	"github.com/cwbudde/manyvecs/vector"
)

func TestVec3(t *testing.T) {
	a := NewVec3i16(2, 3, 4)
	b := NewVec3i16(1, 1, 2)

	tests := []struct {
		name string
		got  Vec3i16
		want Vec3i16
	}{
		{"add", a.Add(b), NewVec3i16(3, 4, 6)},
		{"sub", a.Sub(b), NewVec3i16(1, 2, 2)},
		{"mul", a.Mul(b), NewVec3i16(2, 3, 8)},
		{"div", a.Div(b), NewVec3i16(2, 3, 2)},
		{"rem scalar", a.RemScalar(3), NewVec3i16(2, 0, 1)},
		{"xor scalar", a.XorScalar(1), NewVec3i16(3, 2, 5)},
		{"shl scalar", a.ShlScalar(1), NewVec3i16(4, 6, 8)},
		{"neg", a.Neg(), NewVec3i16(-2, -3, -4)},
		{"max", a.Max(NewVec3i16(5, 0, 4)), NewVec3i16(5, 3, 4)},
		{"min", a.Min(NewVec3i16(5, 0, 4)), NewVec3i16(2, 0, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := a.MagnitudeSq(); got != 29 {
		t.Errorf("MagnitudeSq = %v, want 29", got)
	}
	if got := a.String(); got != "Vec3i16(2, 3, 4)" {
		t.Errorf("String() = %q", got)
	}
}

func TestVec3Float(t *testing.T) {
	testutil.RequireSqrtNearlyEqual(t, NewVec3f64(1, 0, 0).Magnitude(), 1, 0)
	testutil.RequireSqrtNearlyEqual(t, NewVec3(2, 3, 6).Magnitude(), 7, 0)

	n := NewVec3f64(0, -5, 0).Normalize()
	testutil.RequireSqrtSliceNearlyEqual(t, n.Slice(), []float64{0, -1, 0}, 1e-15)
	testutil.RequireNonFinite(t, Vec3d{}.Normalize().Slice())

	if got := NewVec3f32(1.5, -1.5, 2).Floor(); got != NewVec3f32(1, -2, 2) {
		t.Errorf("Floor = %v", got)
	}
	if got := NewVec3f32(1.5, -1.5, 2).Ceil(); got != NewVec3f32(2, -1, 2) {
		t.Errorf("Ceil = %v", got)
	}
}

func TestVec3Conversions(t *testing.T) {
	v := NewVec3u32(1, 2, 3)
	if got := Vec3u32FromArray(v.Array()); got != v {
		t.Fatalf("array round trip = %v", got)
	}
	if got := NewVec3u32(v.Components()); got != v {
		t.Fatalf("components round trip = %v", got)
	}
	if got := Vec3u32FromGeneric(v.Generic()); got != v {
		t.Fatalf("generic round trip = %v", got)
	}
	if _, err := Vec3u32FromSlice([]uint32{1, 2}); !errors.Is(err, vector.ErrDimension) {
		t.Fatalf("Vec3u32FromSlice error = %v, want ErrDimension", err)
	}
}

func TestVec4(t *testing.T) {
	a := NewVec4(2, 3, 4, 5)
	b := NewVec4(1, 2, 4, 10)

	tests := []struct {
		name string
		got  Vec4
		want Vec4
	}{
		{"add", a.Add(b), NewVec4(3, 5, 8, 15)},
		{"sub", a.Sub(b), NewVec4(1, 1, 0, -5)},
		{"mul", a.Mul(b), NewVec4(2, 6, 16, 50)},
		{"div", a.Div(b), NewVec4(2, 1.5, 1, 0.5)},
		{"add scalar", a.AddScalar(0.5), NewVec4(2.5, 3.5, 4.5, 5.5)},
		{"clamp", a.Clamp(NewVec4(3, 3, 3, 3), NewVec4(4, 4, 4, 4)), NewVec4(3, 3, 4, 4)},
		{"neg", a.Neg(), NewVec4(-2, -3, -4, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	testutil.RequireSqrtNearlyEqual(t, NewVec4(1, 1, 1, 1).Magnitude(), 2, 0)
	testutil.RequireNonFinite(t, Vec4{}.Normalize().Slice())

	w := NewVec4u64(1, 2, 3, 4)
	if got := Vec4u64FromArray(w.Array()); got != w {
		t.Fatalf("array round trip = %v", got)
	}
	if got := w.Generic(); got != vector.NewVec4[uint64](1, 2, 3, 4) {
		t.Fatalf("Generic() = %v", got)
	}
	if got := w.String(); got != "Vec4u64(1, 2, 3, 4)" {
		t.Fatalf("String() = %q", got)
	}
}
