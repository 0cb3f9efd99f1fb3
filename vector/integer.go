package vector

import "golang.org/x/exp/constraints"

// Rem2 returns a % b component-wise. A zero component in b panics.
func Rem2[T constraints.Integer](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.x % b.x, a.y % b.y}
}

// Rem3 returns a % b component-wise. A zero component in b panics.
func Rem3[T constraints.Integer](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.x % b.x, a.y % b.y, a.z % b.z}
}

// Rem4 returns a % b component-wise. A zero component in b panics.
func Rem4[T constraints.Integer](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.x % b.x, a.y % b.y, a.z % b.z, a.w % b.w}
}

// RemScalar2 returns the remainder of every component divided by s.
func RemScalar2[T constraints.Integer](v Vec2[T], s T) Vec2[T] {
	return Vec2[T]{v.x % s, v.y % s}
}

// RemScalar3 returns the remainder of every component divided by s.
func RemScalar3[T constraints.Integer](v Vec3[T], s T) Vec3[T] {
	return Vec3[T]{v.x % s, v.y % s, v.z % s}
}

// RemScalar4 returns the remainder of every component divided by s.
func RemScalar4[T constraints.Integer](v Vec4[T], s T) Vec4[T] {
	return Vec4[T]{v.x % s, v.y % s, v.z % s, v.w % s}
}
