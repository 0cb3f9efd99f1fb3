//go:build !nolegacy && !macroed

package manyvecs

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/manyvecs/vector"
)

// Scalar is the constraint satisfied by every vector component type.
type Scalar = vector.Scalar

// Generic vector types.
type (
	Vec2[T vector.Scalar] = vector.Vec2[T]
	Vec3[T vector.Scalar] = vector.Vec3[T]
	Vec4[T vector.Scalar] = vector.Vec4[T]
)

// Single precision floating-point vectors.
type (
	Vec2f = vector.Vec2[float32]
	Vec3f = vector.Vec3[float32]
	Vec4f = vector.Vec4[float32]
)

// Double precision floating-point vectors.
type (
	Vec2d = vector.Vec2[float64]
	Vec3d = vector.Vec3[float64]
	Vec4d = vector.Vec4[float64]
)

// Unsigned integer vectors.
type (
	Vec2u = vector.Vec2[uint]
	Vec3u = vector.Vec3[uint]
	Vec4u = vector.Vec4[uint]
)

// Signed integer vectors.
type (
	Vec2i = vector.Vec2[int]
	Vec3i = vector.Vec3[int]
	Vec4i = vector.Vec4[int]
)

// ErrDimension is returned when a slice has the wrong number of elements.
var ErrDimension = vector.ErrDimension

// NewVec2 creates a Vec2 from its components.
func NewVec2[T vector.Scalar](x, y T) Vec2[T] { return vector.NewVec2(x, y) }

// NewVec3 creates a Vec3 from its components.
func NewVec3[T vector.Scalar](x, y, z T) Vec3[T] { return vector.NewVec3(x, y, z) }

// NewVec4 creates a Vec4 from its components.
func NewVec4[T vector.Scalar](x, y, z, w T) Vec4[T] { return vector.NewVec4(x, y, z, w) }

// FromArray2 creates a Vec2 from a [2]T array.
func FromArray2[T vector.Scalar](a [2]T) Vec2[T] { return vector.FromArray2(a) }

// FromArray3 creates a Vec3 from a [3]T array.
func FromArray3[T vector.Scalar](a [3]T) Vec3[T] { return vector.FromArray3(a) }

// FromArray4 creates a Vec4 from a [4]T array.
func FromArray4[T vector.Scalar](a [4]T) Vec4[T] { return vector.FromArray4(a) }

// FromSlice2 creates a Vec2 from a slice of exactly two elements. Other
// lengths return an error wrapping ErrDimension.
func FromSlice2[T vector.Scalar](s []T) (Vec2[T], error) { return vector.FromSlice2(s) }

// FromSlice3 creates a Vec3 from a slice of exactly three elements. Other
// lengths return an error wrapping ErrDimension.
func FromSlice3[T vector.Scalar](s []T) (Vec3[T], error) { return vector.FromSlice3(s) }

// FromSlice4 creates a Vec4 from a slice of exactly four elements. Other
// lengths return an error wrapping ErrDimension.
func FromSlice4[T vector.Scalar](s []T) (Vec4[T], error) { return vector.FromSlice4(s) }

// Magnitude2 returns the Euclidean length of v.
func Magnitude2[T constraints.Float](v Vec2[T]) T { return vector.Magnitude2(v) }

// Magnitude3 returns the Euclidean length of v.
func Magnitude3[T constraints.Float](v Vec3[T]) T { return vector.Magnitude3(v) }

// Magnitude4 returns the Euclidean length of v.
func Magnitude4[T constraints.Float](v Vec4[T]) T { return vector.Magnitude4(v) }

// Normalize2 divides every component of v by its magnitude.
// A zero vector yields NaN components.
func Normalize2[T constraints.Float](v Vec2[T]) Vec2[T] { return vector.Normalize2(v) }

// Normalize3 divides every component of v by its magnitude.
// A zero vector yields NaN components.
func Normalize3[T constraints.Float](v Vec3[T]) Vec3[T] { return vector.Normalize3(v) }

// Normalize4 divides every component of v by its magnitude.
// A zero vector yields NaN components.
func Normalize4[T constraints.Float](v Vec4[T]) Vec4[T] { return vector.Normalize4(v) }
