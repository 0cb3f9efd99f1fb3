package fastmath

import (
	"math"
	"testing"
)

func TestSqrt(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0},
		{1, 1},
		{4, 2},
		{100, 10},
		{2, math.Sqrt2},
		{0.25, 0.5},
		{1e-9, math.Sqrt(1e-9)},
		{4e6, 2e3},
		{123456.789, math.Sqrt(123456.789)},
	}

	for _, tt := range tests {
		got := Sqrt(tt.x)
		if math.Abs(got-tt.want) > MaxRelError*tt.want {
			t.Errorf("Sqrt(%v) = %v, want %v (rel err > %v)", tt.x, got, tt.want, MaxRelError)
		}
	}
}

func TestSqrtZeroAndSpecials(t *testing.T) {
	if got := Sqrt(0); got != 0 {
		t.Errorf("Sqrt(0) = %v, want 0", got)
	}
	if got := Sqrt(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("Sqrt(+Inf) = %v, want +Inf", got)
	}
	if got := Sqrt(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Sqrt(NaN) = %v, want NaN", got)
	}
	if got := Sqrt(-1); !math.IsNaN(got) {
		t.Errorf("Sqrt(-1) = %v, want NaN", got)
	}
	if got := 0 / Sqrt(0); !math.IsNaN(got) {
		t.Errorf("0/Sqrt(0) = %v, want NaN", got)
	}
}
