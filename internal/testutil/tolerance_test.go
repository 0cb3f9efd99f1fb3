package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []float32{1, 2, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestIsNonFinite(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{0, false},
		{-1.5, false},
		{math.NaN(), true},
		{math.Inf(1), true},
		{math.Inf(-1), true},
	}

	for _, tt := range tests {
		if got := isNonFinite(tt.v); got != tt.want {
			t.Errorf("isNonFinite(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRandomComponentsDeterministic(t *testing.T) {
	a := RandomComponents(7, 10, 16)
	b := RandomComponents(7, 10, 16)

	RequireSliceNearlyEqual(t, a, b, 0)

	for i, v := range a {
		if v < -10 || v > 10 {
			t.Fatalf("component %d = %v outside [-10, 10]", i, v)
		}
	}
}

func TestSqrtTolWidensToBackend(t *testing.T) {
	if got := sqrtTol(100, 0); got != 100*SqrtRelTol {
		t.Fatalf("sqrtTol(100, 0) = %v, want %v", got, 100*SqrtRelTol)
	}
	if got := sqrtTol(0.1, 1e-3); got != 1e-3 {
		t.Fatalf("sqrtTol(0.1, 1e-3) = %v, want the caller's eps", got)
	}
	if got := sqrtTol(-3, 0); got != 3*SqrtRelTol {
		t.Fatalf("sqrtTol(-3, 0) = %v, want %v", got, 3*SqrtRelTol)
	}
}
