package vector

import "fmt"

// Vec3 is a three component vector with x, y and z.
//
// The zero value is the zero vector.
type Vec3[T Scalar] struct {
	x, y, z T
}

// NewVec3 creates a Vec3 from its components.
func NewVec3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x: x, y: y, z: z}
}

// FromArray3 creates a Vec3 from a [3]T array.
func FromArray3[T Scalar](a [3]T) Vec3[T] {
	return Vec3[T]{x: a[0], y: a[1], z: a[2]}
}

// FromSlice3 creates a Vec3 from a slice of exactly three elements.
func FromSlice3[T Scalar](s []T) (Vec3[T], error) {
	if len(s) != 3 {
		return Vec3[T]{}, DimensionError(3, len(s))
	}
	return Vec3[T]{x: s[0], y: s[1], z: s[2]}, nil
}

// X returns the x component.
func (v Vec3[T]) X() T { return v.x }

// Y returns the y component.
func (v Vec3[T]) Y() T { return v.y }

// Z returns the z component.
func (v Vec3[T]) Z() T { return v.z }

// Components returns the components in order.
func (v Vec3[T]) Components() (x, y, z T) {
	return v.x, v.y, v.z
}

// Array returns the components as an array.
func (v Vec3[T]) Array() [3]T {
	return [3]T{v.x, v.y, v.z}
}

// Slice returns the components as a newly allocated slice.
func (v Vec3[T]) Slice() []T {
	return []T{v.x, v.y, v.z}
}

// Add returns v + o component-wise.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.x + o.x, v.y + o.y, v.z + o.z}
}

// Sub returns v - o component-wise.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.x - o.x, v.y - o.y, v.z - o.z}
}

// Mul returns v * o component-wise.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.x * o.x, v.y * o.y, v.z * o.z}
}

// Div returns v / o component-wise.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.x / o.x, v.y / o.y, v.z / o.z}
}

// AddScalar adds s to every component.
func (v Vec3[T]) AddScalar(s T) Vec3[T] {
	return Vec3[T]{v.x + s, v.y + s, v.z + s}
}

// SubScalar subtracts s from every component.
func (v Vec3[T]) SubScalar(s T) Vec3[T] {
	return Vec3[T]{v.x - s, v.y - s, v.z - s}
}

// MulScalar multiplies every component by s.
func (v Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{v.x * s, v.y * s, v.z * s}
}

// DivScalar divides every component by s.
func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{v.x / s, v.y / s, v.z / s}
}

// MagnitudeSq returns x^2 + y^2 + z^2.
func (v Vec3[T]) MagnitudeSq() T {
	return v.x*v.x + v.y*v.y + v.z*v.z
}

// Max returns the larger of each component pair.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v.x, o.x), max(v.y, o.y), max(v.z, o.z)}
}

// Min returns the smaller of each component pair.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v.x, o.x), min(v.y, o.y), min(v.z, o.z)}
}

// Clamp constrains each component to the range given by lo and hi.
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	return v.Max(lo).Min(hi)
}

// MaxScalar returns the larger of each component and s.
func (v Vec3[T]) MaxScalar(s T) Vec3[T] {
	return Vec3[T]{max(v.x, s), max(v.y, s), max(v.z, s)}
}

// MinScalar returns the smaller of each component and s.
func (v Vec3[T]) MinScalar(s T) Vec3[T] {
	return Vec3[T]{min(v.x, s), min(v.y, s), min(v.z, s)}
}

// ClampScalar constrains every component to [lo, hi].
func (v Vec3[T]) ClampScalar(lo, hi T) Vec3[T] {
	return v.MaxScalar(lo).MinScalar(hi)
}

// Equal reports whether all components are equal.
func (v Vec3[T]) Equal(o Vec3[T]) bool {
	return v.x == o.x && v.y == o.y && v.z == o.z
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.x, v.y, v.z)
}
