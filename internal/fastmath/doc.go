// Package fastmath selects the square root backend used by every magnitude
// computation in manyvecs.
//
// The default build uses math.Sqrt and is exact to IEEE 754 rounding.
// Building with -tags fastmath switches to an approximation from algo-approx.
//
// # Accuracy Characteristics
//
// FastSqrt: Babylonian iteration from a bit-level initial guess, at most
// 1.6e-6 relative error for normal positive inputs. Zero, NaN and +Inf
// pass through unchanged, so normalizing a zero vector still yields NaN.
//
// MaxRelError reports the bound of the selected backend. Normalization
// results drift from unit length by up to twice that amount, since both the
// normalizing division and the later magnitude go through Sqrt.
package fastmath
