//go:build macroed && nolegacy

package manyvecs

import "github.com/cwbudde/manyvecs/fixedvec"

// Default vector types.
type (
	Vec2 = fixedvec.Vec2
	Vec3 = fixedvec.Vec3
	Vec4 = fixedvec.Vec4
)

// Short aliases for the floating-point types.
type (
	Vec2f = fixedvec.Vec2f
	Vec3f = fixedvec.Vec3f
	Vec4f = fixedvec.Vec4f
	Vec2d = fixedvec.Vec2d
	Vec3d = fixedvec.Vec3d
	Vec4d = fixedvec.Vec4d
)

// Two component vectors.
type (
	Vec2f32 = fixedvec.Vec2f32
	Vec2f64 = fixedvec.Vec2f64
	Vec2i   = fixedvec.Vec2i
	Vec2i8  = fixedvec.Vec2i8
	Vec2i16 = fixedvec.Vec2i16
	Vec2i32 = fixedvec.Vec2i32
	Vec2i64 = fixedvec.Vec2i64
	Vec2u   = fixedvec.Vec2u
	Vec2u8  = fixedvec.Vec2u8
	Vec2u16 = fixedvec.Vec2u16
	Vec2u32 = fixedvec.Vec2u32
	Vec2u64 = fixedvec.Vec2u64
)

// Three component vectors.
type (
	Vec3f32 = fixedvec.Vec3f32
	Vec3f64 = fixedvec.Vec3f64
	Vec3i   = fixedvec.Vec3i
	Vec3i8  = fixedvec.Vec3i8
	Vec3i16 = fixedvec.Vec3i16
	Vec3i32 = fixedvec.Vec3i32
	Vec3i64 = fixedvec.Vec3i64
	Vec3u   = fixedvec.Vec3u
	Vec3u8  = fixedvec.Vec3u8
	Vec3u16 = fixedvec.Vec3u16
	Vec3u32 = fixedvec.Vec3u32
	Vec3u64 = fixedvec.Vec3u64
)

// Four component vectors.
type (
	Vec4f32 = fixedvec.Vec4f32
	Vec4f64 = fixedvec.Vec4f64
	Vec4i   = fixedvec.Vec4i
	Vec4i8  = fixedvec.Vec4i8
	Vec4i16 = fixedvec.Vec4i16
	Vec4i32 = fixedvec.Vec4i32
	Vec4i64 = fixedvec.Vec4i64
	Vec4u   = fixedvec.Vec4u
	Vec4u8  = fixedvec.Vec4u8
	Vec4u16 = fixedvec.Vec4u16
	Vec4u32 = fixedvec.Vec4u32
	Vec4u64 = fixedvec.Vec4u64
)

// Constructors of the default and most used types.
var (
	NewVec2    = fixedvec.NewVec2
	NewVec3    = fixedvec.NewVec3
	NewVec4    = fixedvec.NewVec4
	NewVec2f32 = fixedvec.NewVec2f32
	NewVec3f32 = fixedvec.NewVec3f32
	NewVec4f32 = fixedvec.NewVec4f32
	NewVec2f64 = fixedvec.NewVec2f64
	NewVec3f64 = fixedvec.NewVec3f64
	NewVec4f64 = fixedvec.NewVec4f64
	NewVec2i   = fixedvec.NewVec2i
	NewVec3i   = fixedvec.NewVec3i
	NewVec4i   = fixedvec.NewVec4i
	NewVec2u   = fixedvec.NewVec2u
	NewVec3u   = fixedvec.NewVec3u
	NewVec4u   = fixedvec.NewVec4u
)
