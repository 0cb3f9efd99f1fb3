package vector

// Neg2 negates every component.
func Neg2[T Signed](v Vec2[T]) Vec2[T] {
	return Vec2[T]{-v.x, -v.y}
}

// Neg3 negates every component.
func Neg3[T Signed](v Vec3[T]) Vec3[T] {
	return Vec3[T]{-v.x, -v.y, -v.z}
}

// Neg4 negates every component.
func Neg4[T Signed](v Vec4[T]) Vec4[T] {
	return Vec4[T]{-v.x, -v.y, -v.z, -v.w}
}

// Perp returns v rotated a quarter turn counter-clockwise, (-y, x).
func Perp[T Signed](v Vec2[T]) Vec2[T] {
	return Vec2[T]{-v.y, v.x}
}
