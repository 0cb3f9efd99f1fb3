package vector

import (
	"math"

	"github.com/cwbudde/manyvecs/internal/fastmath"
	"golang.org/x/exp/constraints"
)

// Magnitude2 returns the Euclidean length sqrt(x^2 + y^2).
func Magnitude2[T constraints.Float](v Vec2[T]) T {
	return T(fastmath.Sqrt(float64(v.MagnitudeSq())))
}

// Magnitude3 returns the Euclidean length sqrt(x^2 + y^2 + z^2).
func Magnitude3[T constraints.Float](v Vec3[T]) T {
	return T(fastmath.Sqrt(float64(v.MagnitudeSq())))
}

// Magnitude4 returns the Euclidean length sqrt(x^2 + y^2 + z^2 + w^2).
func Magnitude4[T constraints.Float](v Vec4[T]) T {
	return T(fastmath.Sqrt(float64(v.MagnitudeSq())))
}

// Normalize2 divides every component by the magnitude of v.
//
// A zero vector yields NaN components.
func Normalize2[T constraints.Float](v Vec2[T]) Vec2[T] {
	m := Magnitude2(v)
	return Vec2[T]{v.x / m, v.y / m}
}

// Normalize3 divides every component by the magnitude of v.
//
// A zero vector yields NaN components.
func Normalize3[T constraints.Float](v Vec3[T]) Vec3[T] {
	m := Magnitude3(v)
	return Vec3[T]{v.x / m, v.y / m, v.z / m}
}

// Normalize4 divides every component by the magnitude of v.
//
// A zero vector yields NaN components.
func Normalize4[T constraints.Float](v Vec4[T]) Vec4[T] {
	m := Magnitude4(v)
	return Vec4[T]{v.x / m, v.y / m, v.z / m, v.w / m}
}

// Floor2 rounds every component down.
func Floor2[T constraints.Float](v Vec2[T]) Vec2[T] {
	return Vec2[T]{floor(v.x), floor(v.y)}
}

// Floor3 rounds every component down.
func Floor3[T constraints.Float](v Vec3[T]) Vec3[T] {
	return Vec3[T]{floor(v.x), floor(v.y), floor(v.z)}
}

// Floor4 rounds every component down.
func Floor4[T constraints.Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{floor(v.x), floor(v.y), floor(v.z), floor(v.w)}
}

// Ceil2 rounds every component up.
func Ceil2[T constraints.Float](v Vec2[T]) Vec2[T] {
	return Vec2[T]{ceil(v.x), ceil(v.y)}
}

// Ceil3 rounds every component up.
func Ceil3[T constraints.Float](v Vec3[T]) Vec3[T] {
	return Vec3[T]{ceil(v.x), ceil(v.y), ceil(v.z)}
}

// Ceil4 rounds every component up.
func Ceil4[T constraints.Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{ceil(v.x), ceil(v.y), ceil(v.z), ceil(v.w)}
}

func floor[T constraints.Float](x T) T { return T(math.Floor(float64(x))) }

func ceil[T constraints.Float](x T) T { return T(math.Ceil(float64(x))) }
