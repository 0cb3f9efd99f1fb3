package testutil

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/manyvecs/internal/fastmath"
)

// SqrtRelTol is the relative tolerance for results that went through the
// square root backend, possibly twice (normalize, then magnitude).
const SqrtRelTol = 4 * fastmath.MaxRelError

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any component pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[T constraints.Float](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("component %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNearlyEqual fails t if |got - want| exceeds eps.
func RequireNearlyEqual[T constraints.Float](t *testing.T, got, want T, eps float64) {
	t.Helper()
	if diff := math.Abs(float64(got) - float64(want)); diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSqrtNearlyEqual is RequireNearlyEqual for values computed through
// fastmath.Sqrt. eps is widened to SqrtRelTol relative to want, so exact
// checks (eps 0) still hold under the approximated backend.
func RequireSqrtNearlyEqual[T constraints.Float](t *testing.T, got, want T, eps float64) {
	t.Helper()
	RequireNearlyEqual(t, got, want, sqrtTol(float64(want), eps))
}

// RequireSqrtSliceNearlyEqual is RequireSliceNearlyEqual with the per
// component widening of RequireSqrtNearlyEqual.
func RequireSqrtSliceNearlyEqual[T constraints.Float](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		tol := sqrtTol(float64(want[i]), eps)
		if diff := math.Abs(float64(got[i]) - float64(want[i])); diff > tol {
			t.Fatalf("component %d: got %v, want %v (diff %v > tol %v)", i, got[i], want[i], diff, tol)
		}
	}
}

func sqrtTol(want, eps float64) float64 {
	return max(eps, SqrtRelTol*max(1, math.Abs(want)))
}

// RequireFinite fails t if any component is NaN or Inf.
func RequireFinite[T constraints.Float](t *testing.T, data []T) {
	t.Helper()
	for i, v := range data {
		if isNonFinite(v) {
			t.Fatalf("component %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonFinite fails t if any component is a finite number.
func RequireNonFinite[T constraints.Float](t *testing.T, data []T) {
	t.Helper()
	for i, v := range data {
		if !isNonFinite(v) {
			t.Fatalf("component %d: got finite value %v, want NaN or Inf", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T constraints.Float](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

func isNonFinite[T constraints.Float](v T) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
