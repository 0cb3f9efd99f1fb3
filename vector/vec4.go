package vector

import "fmt"

// Vec4 is a four component vector with x, y, z and w.
//
// The zero value is the zero vector.
type Vec4[T Scalar] struct {
	x, y, z, w T
}

// NewVec4 creates a Vec4 from its components.
func NewVec4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x: x, y: y, z: z, w: w}
}

// FromArray4 creates a Vec4 from a [4]T array.
func FromArray4[T Scalar](a [4]T) Vec4[T] {
	return Vec4[T]{x: a[0], y: a[1], z: a[2], w: a[3]}
}

// FromSlice4 creates a Vec4 from a slice of exactly four elements.
func FromSlice4[T Scalar](s []T) (Vec4[T], error) {
	if len(s) != 4 {
		return Vec4[T]{}, DimensionError(4, len(s))
	}
	return Vec4[T]{x: s[0], y: s[1], z: s[2], w: s[3]}, nil
}

// X returns the x component.
func (v Vec4[T]) X() T { return v.x }

// Y returns the y component.
func (v Vec4[T]) Y() T { return v.y }

// Z returns the z component.
func (v Vec4[T]) Z() T { return v.z }

// W returns the w component.
func (v Vec4[T]) W() T { return v.w }

// Components returns the components in order.
func (v Vec4[T]) Components() (x, y, z, w T) {
	return v.x, v.y, v.z, v.w
}

// Array returns the components as an array.
func (v Vec4[T]) Array() [4]T {
	return [4]T{v.x, v.y, v.z, v.w}
}

// Slice returns the components as a newly allocated slice.
func (v Vec4[T]) Slice() []T {
	return []T{v.x, v.y, v.z, v.w}
}

// Add returns v + o component-wise.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.x + o.x, v.y + o.y, v.z + o.z, v.w + o.w}
}

// Sub returns v - o component-wise.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.x - o.x, v.y - o.y, v.z - o.z, v.w - o.w}
}

// Mul returns v * o component-wise.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.x * o.x, v.y * o.y, v.z * o.z, v.w * o.w}
}

// Div returns v / o component-wise.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.x / o.x, v.y / o.y, v.z / o.z, v.w / o.w}
}

// AddScalar adds s to every component.
func (v Vec4[T]) AddScalar(s T) Vec4[T] {
	return Vec4[T]{v.x + s, v.y + s, v.z + s, v.w + s}
}

// SubScalar subtracts s from every component.
func (v Vec4[T]) SubScalar(s T) Vec4[T] {
	return Vec4[T]{v.x - s, v.y - s, v.z - s, v.w - s}
}

// MulScalar multiplies every component by s.
func (v Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{v.x * s, v.y * s, v.z * s, v.w * s}
}

// DivScalar divides every component by s.
func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{v.x / s, v.y / s, v.z / s, v.w / s}
}

// MagnitudeSq returns x^2 + y^2 + z^2 + w^2.
func (v Vec4[T]) MagnitudeSq() T {
	return v.x*v.x + v.y*v.y + v.z*v.z + v.w*v.w
}

// Max returns the larger of each component pair.
func (v Vec4[T]) Max(o Vec4[T]) Vec4[T] {
	return Vec4[T]{max(v.x, o.x), max(v.y, o.y), max(v.z, o.z), max(v.w, o.w)}
}

// Min returns the smaller of each component pair.
func (v Vec4[T]) Min(o Vec4[T]) Vec4[T] {
	return Vec4[T]{min(v.x, o.x), min(v.y, o.y), min(v.z, o.z), min(v.w, o.w)}
}

// Clamp constrains each component to the range given by lo and hi.
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return v.Max(lo).Min(hi)
}

// MaxScalar returns the larger of each component and s.
func (v Vec4[T]) MaxScalar(s T) Vec4[T] {
	return Vec4[T]{max(v.x, s), max(v.y, s), max(v.z, s), max(v.w, s)}
}

// MinScalar returns the smaller of each component and s.
func (v Vec4[T]) MinScalar(s T) Vec4[T] {
	return Vec4[T]{min(v.x, s), min(v.y, s), min(v.z, s), min(v.w, s)}
}

// ClampScalar constrains every component to [lo, hi].
func (v Vec4[T]) ClampScalar(lo, hi T) Vec4[T] {
	return v.MaxScalar(lo).MinScalar(hi)
}

// Equal reports whether all components are equal.
func (v Vec4[T]) Equal(o Vec4[T]) bool {
	return v.x == o.x && v.y == o.y && v.z == o.z && v.w == o.w
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("Vec4(%v, %v, %v, %v)", v.x, v.y, v.z, v.w)
}
