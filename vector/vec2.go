package vector

import "fmt"

// Vec2 is a two component vector with x and y.
//
// The zero value is the zero vector.
type Vec2[T Scalar] struct {
	x, y T
}

// NewVec2 creates a Vec2 from its components.
func NewVec2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x: x, y: y}
}

// FromArray2 creates a Vec2 from a [2]T array.
func FromArray2[T Scalar](a [2]T) Vec2[T] {
	return Vec2[T]{x: a[0], y: a[1]}
}

// FromSlice2 creates a Vec2 from a slice of exactly two elements.
func FromSlice2[T Scalar](s []T) (Vec2[T], error) {
	if len(s) != 2 {
		return Vec2[T]{}, DimensionError(2, len(s))
	}
	return Vec2[T]{x: s[0], y: s[1]}, nil
}

// X returns the x component.
func (v Vec2[T]) X() T { return v.x }

// Y returns the y component.
func (v Vec2[T]) Y() T { return v.y }

// Components returns the components in order.
func (v Vec2[T]) Components() (x, y T) {
	return v.x, v.y
}

// Array returns the components as an array.
func (v Vec2[T]) Array() [2]T {
	return [2]T{v.x, v.y}
}

// Slice returns the components as a newly allocated slice.
func (v Vec2[T]) Slice() []T {
	return []T{v.x, v.y}
}

// Add returns v + o component-wise.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.x + o.x, v.y + o.y}
}

// Sub returns v - o component-wise.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.x - o.x, v.y - o.y}
}

// Mul returns v * o component-wise.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.x * o.x, v.y * o.y}
}

// Div returns v / o component-wise.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.x / o.x, v.y / o.y}
}

// AddScalar adds s to every component.
func (v Vec2[T]) AddScalar(s T) Vec2[T] {
	return Vec2[T]{v.x + s, v.y + s}
}

// SubScalar subtracts s from every component.
func (v Vec2[T]) SubScalar(s T) Vec2[T] {
	return Vec2[T]{v.x - s, v.y - s}
}

// MulScalar multiplies every component by s.
func (v Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{v.x * s, v.y * s}
}

// DivScalar divides every component by s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{v.x / s, v.y / s}
}

// MagnitudeSq returns x^2 + y^2.
func (v Vec2[T]) MagnitudeSq() T {
	return v.x*v.x + v.y*v.y
}

// Max returns the larger of each component pair.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	return Vec2[T]{max(v.x, o.x), max(v.y, o.y)}
}

// Min returns the smaller of each component pair.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	return Vec2[T]{min(v.x, o.x), min(v.y, o.y)}
}

// Clamp constrains each component to the range given by lo and hi.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return v.Max(lo).Min(hi)
}

// MaxScalar returns the larger of each component and s.
func (v Vec2[T]) MaxScalar(s T) Vec2[T] {
	return Vec2[T]{max(v.x, s), max(v.y, s)}
}

// MinScalar returns the smaller of each component and s.
func (v Vec2[T]) MinScalar(s T) Vec2[T] {
	return Vec2[T]{min(v.x, s), min(v.y, s)}
}

// ClampScalar constrains every component to [lo, hi].
func (v Vec2[T]) ClampScalar(lo, hi T) Vec2[T] {
	return v.MaxScalar(lo).MinScalar(hi)
}

// Equal reports whether all components are equal.
func (v Vec2[T]) Equal(o Vec2[T]) bool {
	return v.x == o.x && v.y == o.y
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("Vec2(%v, %v)", v.x, v.y)
}
