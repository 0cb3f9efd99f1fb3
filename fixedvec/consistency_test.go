package fixedvec

import (
	"reflect"
	"slices"
	"testing"

	"github.com/cwbudde/manyvecs/internal/testutil"
)

func methodNames(v any) []string {
	typ := reflect.TypeOf(v)
	names := make([]string, typ.NumMethod())
	for i := range names {
		names[i] = typ.Method(i).Name
	}
	return names
}

// Every dimension of one scalar must carry the same methods, apart from
// Perp, which only exists in two dimensions.
func TestMethodSetsMatchAcrossDimensions(t *testing.T) {
	groups := [][3]any{
		{Vec2f32{}, Vec3f32{}, Vec4f32{}},
		{Vec2f64{}, Vec3f64{}, Vec4f64{}},
		{Vec2i{}, Vec3i{}, Vec4i{}},
		{Vec2i8{}, Vec3i8{}, Vec4i8{}},
		{Vec2i16{}, Vec3i16{}, Vec4i16{}},
		{Vec2i32{}, Vec3i32{}, Vec4i32{}},
		{Vec2i64{}, Vec3i64{}, Vec4i64{}},
		{Vec2u{}, Vec3u{}, Vec4u{}},
		{Vec2u8{}, Vec3u8{}, Vec4u8{}},
		{Vec2u16{}, Vec3u16{}, Vec4u16{}},
		{Vec2u32{}, Vec3u32{}, Vec4u32{}},
		{Vec2u64{}, Vec3u64{}, Vec4u64{}},
	}

	for _, g := range groups {
		two := slices.DeleteFunc(methodNames(g[0]), func(n string) bool { return n == "Perp" })
		for _, other := range g[1:] {
			if got := methodNames(other); !slices.Equal(got, two) {
				t.Errorf("%T methods %v differ from %T methods %v", other, got, g[0], two)
			}
		}
	}
}

func TestKindSpecificMethods(t *testing.T) {
	tests := []struct {
		v    any
		has  []string
		lack []string
	}{
		{Vec3f32{}, []string{"Magnitude", "Normalize", "Floor", "Ceil", "Neg", "Rem"}, []string{"And", "Shl"}},
		{Vec2f64{}, []string{"Perp", "Neg"}, []string{"Xor"}},
		{Vec4i64{}, []string{"Neg", "And", "Or", "Xor", "AndNot", "Shl", "Shr"}, []string{"Magnitude", "Normalize"}},
		{Vec2u16{}, []string{"And", "ShrScalar", "Rem"}, []string{"Neg", "Perp", "Magnitude"}},
	}

	for _, tt := range tests {
		names := methodNames(tt.v)
		for _, n := range tt.has {
			if !slices.Contains(names, n) {
				t.Errorf("%T lacks %s", tt.v, n)
			}
		}
		for _, n := range tt.lack {
			if slices.Contains(names, n) {
				t.Errorf("%T has unexpected %s", tt.v, n)
			}
		}
	}
}

func TestFieldNames(t *testing.T) {
	want := []string{"X", "Y", "Z", "W"}
	for _, v := range []any{Vec2u8{}, Vec3i{}, Vec4f64{}} {
		typ := reflect.TypeOf(v)
		for i := range typ.NumField() {
			if got := typ.Field(i).Name; got != want[i] {
				t.Errorf("%T field %d = %s, want %s", v, i, got, want[i])
			}
		}
	}
}

func TestProperties(t *testing.T) {
	c := testutil.RandomComponents(11, 500, 400)
	ints := testutil.RandomIntegers(12, 1<<15, 400)

	for i := 0; i+3 < len(c); i += 4 {
		u := NewVec4i64(int64(ints[i]), int64(ints[i+1]), int64(ints[i+2]), int64(ints[i+3]))
		v := NewVec4i64(int64(ints[(i+4)%len(ints)]), 3, -9, 0)
		if got := u.Add(v).Sub(v); got != u {
			t.Fatalf("(%v + %v) - %v = %v", u, v, v, got)
		}
		if got := u.MulScalar(1); got != u {
			t.Fatalf("%v * 1 = %v", u, got)
		}

		f := NewVec4f64(c[i], c[i+1], c[i+2], c[i+3])
		if got := Vec4f64FromArray(f.Array()); got != f {
			t.Fatalf("array round trip %v -> %v", f, got)
		}
		if m := f.Magnitude(); m < 0 {
			t.Fatalf("Magnitude(%v) = %v < 0", f, m)
		}
		testutil.RequireSqrtNearlyEqual(t, f.Normalize().Magnitude(), 1, 1e-9)

		g := NewVec3f32(float32(c[i]), float32(c[i+1]), float32(c[i+2]))
		testutil.RequireSqrtNearlyEqual(t, g.Normalize().Magnitude(), 1, 1e-5)
	}
}
