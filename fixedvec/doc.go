// Package fixedvec provides concrete 2, 3 and 4 component vector types with
// named fields, one type per dimension and scalar type.
//
// The types are generated from vecgen.yaml by go generate, so every
// dimension and scalar carries the same method set:
//
//	v := fixedvec.NewVec2f32(2, 3)
//	v.X += 1 // fields are plain exported values
//	w := v.AddScalar(1).MulScalar(2)
//
// Type names are "Vec" + dimension + scalar suffix: f32, f64 for floats,
// i, i8 .. i64 for signed and u, u8 .. u64 for unsigned integers. Vec2,
// Vec2f and Vec2d alias the float32 and float64 variants.
//
// Methods return new values and never modify the receiver. Float types also
// provide Magnitude, Normalize, Floor and Ceil; signed and float types
// provide Neg, and their two component variants Perp. Integer types get the
// bitwise operators And, Or, Xor, AndNot, Shl and Shr. Shifting by a negative
// count panics, as does integer division by zero.
//
// Normalizing a zero vector yields NaN components rather than an error.
//
// Every type converts to and from the generic vector.VecN of the same
// scalar with Generic and VecN<suffix>FromGeneric.
package fixedvec
