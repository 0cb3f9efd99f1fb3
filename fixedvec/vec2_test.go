package fixedvec

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/manyvecs/internal/testutil"
	"github.com/cwbudde/manyvecs/vector"
)

func TestVec2Fields(t *testing.T) {
	v := NewVec2(3.0, 6.8)
	if v.X != 3.0 || v.Y != 6.8 {
		t.Fatalf("NewVec2(3, 6.8) = %v", v)
	}

	v.X += 1
	v.Y /= 2
	if v != NewVec2(4.0, 3.4) {
		t.Fatalf("after field edits = %v, want Vec2f32(4, 3.4)", v)
	}
}

func TestVec2Types(t *testing.T) {
	values := []fmt.Stringer{
		NewVec2(-2, 3),
		Vec2f{-2, 3},
		Vec2d{-2, 3},
		NewVec2i(-2, 3),
		NewVec2i8(-2, 3),
		NewVec2i16(-2, 3),
		NewVec2i32(-2, 3),
		NewVec2i64(-2, 3),
		NewVec2u(2, 3),
		NewVec2u8(2, 3),
		NewVec2u16(2, 3),
		NewVec2u32(2, 3),
		NewVec2u64(2, 3),
	}

	want := []string{
		"Vec2f32(-2, 3)", "Vec2f32(-2, 3)", "Vec2f64(-2, 3)",
		"Vec2i(-2, 3)", "Vec2i8(-2, 3)", "Vec2i16(-2, 3)", "Vec2i32(-2, 3)", "Vec2i64(-2, 3)",
		"Vec2u(2, 3)", "Vec2u8(2, 3)", "Vec2u16(2, 3)", "Vec2u32(2, 3)", "Vec2u64(2, 3)",
	}

	for i, v := range values {
		if got := v.String(); got != want[i] {
			t.Errorf("String() = %q, want %q", got, want[i])
		}
	}
}

func TestVec2Operators(t *testing.T) {
	a := NewVec2(2.0, 3.0)

	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", a.Add(NewVec2(1.0, 1.0)), NewVec2(3.0, 4.0)},
		{"sub", a.Sub(NewVec2(1.0, 1.0)), NewVec2(1.0, 2.0)},
		{"mul", a.Mul(NewVec2(2.0, 2.0)), NewVec2(4.0, 6.0)},
		{"div", a.Div(NewVec2(2.0, 2.0)), NewVec2(1.0, 1.5)},
		{"rem", a.Rem(NewVec2(2.0, 2.0)), NewVec2(0.0, 1.0)},
		{"add scalar", NewVec2(2.0, -0.5).AddScalar(1.0), NewVec2(3.0, 0.5)},
		{"sub scalar", a.SubScalar(2), NewVec2(0, 1)},
		{"mul scalar", a.MulScalar(2), NewVec2(4, 6)},
		{"div scalar", a.DivScalar(4), NewVec2(0.5, 0.75)},
		{"rem scalar", NewVec2(5.5, -5.5).RemScalar(2), NewVec2(1.5, -1.5)},
		{"neg", a.Neg(), NewVec2(-2, -3)},
		{"perp", a.Perp(), NewVec2(-3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec2EditSequence(t *testing.T) {
	v := NewVec2(2.0, 3.0)
	v = v.AddScalar(1).MulScalar(2).SubScalar(2).DivScalar(4)

	if got := v.String(); got != "Vec2f32(1, 1.5)" {
		t.Fatalf("String() = %q, want %q", got, "Vec2f32(1, 1.5)")
	}
}

func TestVec2IntegerOperators(t *testing.T) {
	v := NewVec2u8(0b1100, 0b1010)
	o := NewVec2u8(0b1010, 0b0110)

	tests := []struct {
		name string
		got  Vec2u8
		want Vec2u8
	}{
		{"and", v.And(o), NewVec2u8(0b1000, 0b0010)},
		{"or", v.Or(o), NewVec2u8(0b1110, 0b1110)},
		{"xor", v.Xor(o), NewVec2u8(0b0110, 0b1100)},
		{"and not", v.AndNot(o), NewVec2u8(0b0100, 0b1000)},
		{"shl", v.Shl(NewVec2u8(1, 2)), NewVec2u8(0b11000, 0b101000)},
		{"shr scalar", v.ShrScalar(2), NewVec2u8(0b11, 0b10)},
		{"and scalar", v.AndScalar(0b1000), NewVec2u8(0b1000, 0b1000)},
		{"rem", v.Rem(NewVec2u8(5, 3)), NewVec2u8(2, 1)},
		{"wrap", NewVec2u8(250, 1).AddScalar(10), NewVec2u8(4, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := NewVec2i(4, 6).Perp(); got != NewVec2i(-6, 4) {
		t.Errorf("Perp = %v, want Vec2i(-6, 4)", got)
	}
	if got := NewVec2i(5, -8).Neg(); got != NewVec2i(-5, 8) {
		t.Errorf("Neg = %v, want Vec2i(-5, 8)", got)
	}
	if !NewVec2u(2, 2).Equal(NewVec2u(2, 2)) {
		t.Error("Equal(Vec2u(2, 2), Vec2u(2, 2)) = false")
	}
}

func TestVec2IntegerDivisionByZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic, got none")
		}
	}()
	NewVec2i32(1, 2).Div(NewVec2i32(1, 0))
}

func TestVec2MaxMinClamp(t *testing.T) {
	v := NewVec2(4.0, 7.0)

	if got := v.Max(Vec2f32FromArray([2]float32{5, 5})); got != NewVec2(5, 7) {
		t.Errorf("Max = %v", got)
	}
	if got := v.Max(NewVec2(6, 5)); got != NewVec2(6, 7) {
		t.Errorf("Max = %v", got)
	}
	if got := v.Min(NewVec2(5, 5)); got != NewVec2(4, 5) {
		t.Errorf("Min = %v", got)
	}
	if got := NewVec2(3, 6).Clamp(NewVec2(4, 4), NewVec2(8, 8)); got != NewVec2(4, 6) {
		t.Errorf("Clamp = %v", got)
	}

	lo, hi := NewVec2u8(5, 10), NewVec2u8(10, 15)
	for x := uint8(0); x < 15; x++ {
		for y := uint8(0); y < 15; y++ {
			v := NewVec2u8(x, y).Clamp(lo, hi)
			if v.X < 5 || v.X > 10 || v.Y < 10 || v.Y > 15 {
				t.Fatalf("Clamp(%d, %d) = %v", x, y, v)
			}
		}
	}
}

func TestVec2Magnitude(t *testing.T) {
	if got := NewVec2(2, 3).MagnitudeSq(); got != 13 {
		t.Errorf("MagnitudeSq = %v, want 13", got)
	}
	testutil.RequireSqrtNearlyEqual(t, NewVec2(6, 8).Magnitude(), 10, 0)
	testutil.RequireSqrtNearlyEqual(t, NewVec2f64(6, 8).Magnitude(), 10, 0)

	a, b := NewVec2f64(2, 4).Normalize(), NewVec2f64(4, 8).Normalize()
	testutil.RequireSqrtSliceNearlyEqual(t, a.Slice(), b.Slice(), 1e-15)
	testutil.RequireSqrtNearlyEqual(t, a.Magnitude(), 1, 1e-12)

	testutil.RequireNonFinite(t, NewVec2(0, 0).Normalize().Slice())
	testutil.RequireNonFinite(t, NewVec2f64(0, 0).Normalize().Slice())
}

func TestVec2FloorCeil(t *testing.T) {
	if got := NewVec2(3.14159, 2.0).Floor(); got != NewVec2(3.0, 2.0) {
		t.Errorf("Floor = %v", got)
	}
	if got := NewVec2(3.14159, 6.0).Ceil(); got != NewVec2(4.0, 6.0) {
		t.Errorf("Ceil = %v", got)
	}
}

func TestVec2Conversions(t *testing.T) {
	a := [2]float32{8.0, 5.0}
	v := Vec2f32FromArray(a)
	if v.X != a[0] || v.Y != a[1] {
		t.Fatalf("Vec2f32FromArray = %v", v)
	}
	if v.Array() != a {
		t.Fatalf("Array() = %v, want %v", v.Array(), a)
	}
	if got := NewVec2f32(v.Components()); got != v {
		t.Fatalf("components round trip = %v", got)
	}

	s := []float32{4.0, 19.0}
	fromSlice, err := Vec2f32FromSlice(s)
	if err != nil {
		t.Fatalf("Vec2f32FromSlice error: %v", err)
	}
	if fromSlice != NewVec2(4, 19) {
		t.Fatalf("Vec2f32FromSlice = %v", fromSlice)
	}
	testutil.RequireSliceNearlyEqual(t, fromSlice.Slice(), s, 0)

	if _, err := Vec2f32FromSlice([]float32{8.0}); !errors.Is(err, vector.ErrDimension) {
		t.Fatalf("Vec2f32FromSlice([8]) error = %v, want ErrDimension", err)
	}
}

func TestVec2GenericConversion(t *testing.T) {
	v := NewVec2i64(-7, 9)
	g := v.Generic()
	if g != vector.NewVec2[int64](-7, 9) {
		t.Fatalf("Generic() = %v", g)
	}
	if back := Vec2i64FromGeneric(g); back != v {
		t.Fatalf("Vec2i64FromGeneric = %v, want %v", back, v)
	}

	f := NewVec2(3, 4)
	if got := vector.Magnitude2(f.Generic()); got != f.Magnitude() {
		t.Fatalf("generic magnitude %v != fixed magnitude %v", got, f.Magnitude())
	}
}

func TestVec2String(t *testing.T) {
	if got := NewVec2f32(4.1, 8.8).String(); got != "Vec2f32(4.1, 8.8)" {
		t.Errorf("String() = %q", got)
	}
	if got := fmt.Sprintf("%v", NewVec2f64(math.Inf(1), -1)); got != "Vec2f64(+Inf, -1)" {
		t.Errorf("Sprintf = %q", got)
	}
	_ = fmt.Sprintf("%#v", NewVec2f32(7.4, 3.9))
}
