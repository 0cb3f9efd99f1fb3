package fixedvec

// Default vector types.
type (
	Vec2 = Vec2f32
	Vec3 = Vec3f32
	Vec4 = Vec4f32
)

// Single precision floating-point vectors.
type (
	Vec2f = Vec2f32
	Vec3f = Vec3f32
	Vec4f = Vec4f32
)

// Double precision floating-point vectors.
type (
	Vec2d = Vec2f64
	Vec3d = Vec3f64
	Vec4d = Vec4f64
)

// NewVec2 creates a Vec2 from its components.
func NewVec2(x, y float32) Vec2 { return NewVec2f32(x, y) }

// NewVec3 creates a Vec3 from its components.
func NewVec3(x, y, z float32) Vec3 { return NewVec3f32(x, y, z) }

// NewVec4 creates a Vec4 from its components.
func NewVec4(x, y, z, w float32) Vec4 { return NewVec4f32(x, y, z, w) }
