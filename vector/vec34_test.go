package vector

import (
	"errors"
	"testing"

	"github.com/cwbudde/manyvecs/internal/testutil"
)

func TestVec3Operators(t *testing.T) {
	a := NewVec3(2, 3, 4)
	b := NewVec3(1, 1, 2)

	tests := []struct {
		name string
		got  Vec3[int]
		want Vec3[int]
	}{
		{"add", a.Add(b), NewVec3(3, 4, 6)},
		{"sub", a.Sub(b), NewVec3(1, 2, 2)},
		{"mul", a.Mul(b), NewVec3(2, 3, 8)},
		{"div", a.Div(b), NewVec3(2, 3, 2)},
		{"add scalar", a.AddScalar(1), NewVec3(3, 4, 5)},
		{"sub scalar", a.SubScalar(1), NewVec3(1, 2, 3)},
		{"mul scalar", a.MulScalar(3), NewVec3(6, 9, 12)},
		{"div scalar", a.DivScalar(2), NewVec3(1, 1, 2)},
		{"max", a.Max(NewVec3(5, 0, 4)), NewVec3(5, 3, 4)},
		{"min", a.Min(NewVec3(5, 0, 4)), NewVec3(2, 0, 4)},
		{"clamp scalar", a.ClampScalar(3, 3), NewVec3(3, 3, 3)},
		{"neg", Neg3(a), NewVec3(-2, -3, -4)},
		{"rem", Rem3(a, NewVec3(2, 2, 3)), NewVec3(0, 1, 1)},
		{"rem scalar", RemScalar3(a, 3), NewVec3(2, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3Accessors(t *testing.T) {
	v := NewVec3(1.5, -2.0, 3.25)
	if v.X() != 1.5 || v.Y() != -2.0 || v.Z() != 3.25 {
		t.Fatalf("accessors = (%v, %v, %v)", v.X(), v.Y(), v.Z())
	}
	if got := FromArray3(v.Array()); got != v {
		t.Fatalf("array round trip = %v", got)
	}
	if got := NewVec3(v.Components()); got != v {
		t.Fatalf("components round trip = %v", got)
	}
	if _, err := FromSlice3([]float64{1, 2}); !errors.Is(err, ErrDimension) {
		t.Fatalf("FromSlice3 error = %v, want ErrDimension", err)
	}
	if got := v.String(); got != "Vec3(1.5, -2, 3.25)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestVec3Magnitude(t *testing.T) {
	testutil.RequireSqrtNearlyEqual(t, Magnitude3(NewVec3(1.0, 0.0, 0.0)), 1, 0)
	testutil.RequireSqrtNearlyEqual(t, Magnitude3(NewVec3(2.0, 3.0, 6.0)), 7, 0)
	n := Normalize3(NewVec3(0.0, 0.0, -5.0))
	testutil.RequireSqrtSliceNearlyEqual(t, n.Slice(), []float64{0, 0, -1}, 1e-15)
	testutil.RequireNonFinite(t, Normalize3(Vec3[float64]{}).Slice())

	if got := Floor3(NewVec3(1.5, -1.5, 2.0)); got != NewVec3(1.0, -2.0, 2.0) {
		t.Errorf("Floor3 = %v", got)
	}
	if got := Ceil3(NewVec3(1.5, -1.5, 2.0)); got != NewVec3(2.0, -1.0, 2.0) {
		t.Errorf("Ceil3 = %v", got)
	}
}

func TestVec4Operators(t *testing.T) {
	a := NewVec4(2.0, 3.0, 4.0, 5.0)
	b := NewVec4(1.0, 2.0, 4.0, 10.0)

	tests := []struct {
		name string
		got  Vec4[float64]
		want Vec4[float64]
	}{
		{"add", a.Add(b), NewVec4(3.0, 5.0, 8.0, 15.0)},
		{"sub", a.Sub(b), NewVec4(1.0, 1.0, 0.0, -5.0)},
		{"mul", a.Mul(b), NewVec4(2.0, 6.0, 16.0, 50.0)},
		{"div", a.Div(b), NewVec4(2.0, 1.5, 1.0, 0.5)},
		{"add scalar", a.AddScalar(0.5), NewVec4(2.5, 3.5, 4.5, 5.5)},
		{"sub scalar", a.SubScalar(2), NewVec4(0.0, 1.0, 2.0, 3.0)},
		{"mul scalar", a.MulScalar(-1), NewVec4(-2.0, -3.0, -4.0, -5.0)},
		{"div scalar", a.DivScalar(2), NewVec4(1.0, 1.5, 2.0, 2.5)},
		{"clamp", a.Clamp(NewVec4(3.0, 3.0, 3.0, 3.0), NewVec4(4.0, 4.0, 4.0, 4.0)), NewVec4(3.0, 3.0, 4.0, 4.0)},
		{"neg", Neg4(a), NewVec4(-2.0, -3.0, -4.0, -5.0)},
		{"floor", Floor4(NewVec4(0.5, 1.5, -0.5, 2.0)), NewVec4(0.0, 1.0, -1.0, 2.0)},
		{"ceil", Ceil4(NewVec4(0.5, 1.5, -0.5, 2.0)), NewVec4(1.0, 2.0, -0.0, 2.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec4Conversions(t *testing.T) {
	v := NewVec4[int64](1, -2, 3, -4)
	if v.X() != 1 || v.Y() != -2 || v.Z() != 3 || v.W() != -4 {
		t.Fatalf("accessors = %v", v)
	}
	if got := FromArray4(v.Array()); got != v {
		t.Fatalf("array round trip = %v", got)
	}
	if got := NewVec4(v.Components()); got != v {
		t.Fatalf("components round trip = %v", got)
	}
	got, err := FromSlice4(v.Slice())
	if err != nil || got != v {
		t.Fatalf("FromSlice4 = %v, %v", got, err)
	}
	if got := Rem4(v, NewVec4[int64](2, 2, 2, 3)); got != NewVec4[int64](1, 0, 1, -1) {
		t.Fatalf("Rem4 = %v", got)
	}
	if got := RemScalar4(v, 2); got != NewVec4[int64](1, 0, 1, 0) {
		t.Fatalf("RemScalar4 = %v", got)
	}
	if got := v.String(); got != "Vec4(1, -2, 3, -4)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestVec4Magnitude(t *testing.T) {
	testutil.RequireSqrtNearlyEqual(t, Magnitude4(NewVec4(1.0, 1.0, 1.0, 1.0)), 2, 0)
	n := Normalize4(NewVec4[float32](2, 2, 2, 2))
	testutil.RequireSqrtSliceNearlyEqual(t, n.Slice(), []float32{0.5, 0.5, 0.5, 0.5}, 1e-7)
	testutil.RequireNonFinite(t, Normalize4(Vec4[float32]{}).Slice())
}
