//go:build !fastmath

package fastmath

import "math"

// MaxRelError bounds the relative error of Sqrt. math.Sqrt is correctly
// rounded, so this is half an ulp of float64.
const MaxRelError = 0x1p-53

// Sqrt computes sqrt(x) using standard library math.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}
