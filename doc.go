// Package manyvecs provides small fixed-size vectors with 2, 3 and 4
// components over Go's numeric types.
//
// Two families implement the same vocabulary:
//
//   - package vector holds the generic family, Vec2[T], Vec3[T] and Vec4[T],
//     parameterized over any integer or floating-point scalar.
//   - package fixedvec holds the generated family, one concrete struct per
//     dimension and scalar type (Vec2f32, Vec3i64, ...) with exported named
//     fields, emitted from a single template by go generate.
//
// Package batch adds bulk operations over slices of float64 vectors.
//
// # Build tags
//
// The root package re-exports one family so that short names such as
// manyvecs.Vec2 are available without importing a subpackage:
//
//	(no tags)                 generic family: manyvecs.Vec2[T], manyvecs.Vec2f, ...
//	-tags macroed,nolegacy    generated family: manyvecs.Vec2 is fixedvec.Vec2f32
//	-tags macroed             both families enabled, nothing re-exported
//	-tags nolegacy            nothing re-exported
//
// With both families enabled the short names would collide, so callers
// import vector and fixedvec directly. The subpackages are importable under
// every combination of tags.
//
// The fastmath tag switches magnitude computations to a faster, less
// precise square root.
package manyvecs
