// Package vector provides fixed-size 2, 3 and 4 component vectors that are
// generic over their scalar type.
//
// Vectors are immutable values. Every operation returns a new vector and the
// components can only be read through accessor methods:
//
//	v := vector.NewVec2(2.0, -0.5)
//	w := v.AddScalar(1) // Vec2(3, 0.5)
//
// # Scalars
//
// Any integer or floating-point type satisfies [Scalar]. Arithmetic follows
// the scalar's own semantics: integers wrap on overflow and panic on division
// by zero, floats follow IEEE 754. The package never checks numeric validity,
// so NaN and Inf components are accepted and propagated.
//
// # Float-only operations
//
// Magnitude, normalization, floor and ceil only make sense for floating-point
// scalars. They are provided as free functions constrained by
// constraints.Float ([Magnitude2], [Normalize3], [Floor4], ...), so calling
// them on an integer vector is a compile error rather than a runtime check.
// The same applies to negation ([Neg2]) for unsigned scalars and to the
// remainder ([Rem2]) for floats.
//
// # Zero vectors
//
// Normalizing a zero vector divides each component by a zero magnitude. The
// result is NaN in every component, matching IEEE 754 rather than reporting
// an error. Callers that need a guard should test [Vec2.MagnitudeSq] first.
//
// # Tuples
//
// A tuple of N scalars is represented by an [N]T array ([FromArray2],
// [Vec2.Array]) or by the multi-value result of Components, which can be
// passed straight back into the constructor:
//
//	u := vector.NewVec2(v.Components())
package vector
