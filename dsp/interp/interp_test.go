package interp

import (
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	if got := Linear(0, 1, 3); got != 1 {
		t.Errorf("Linear(0) = %v, want 1", got)
	}

	if got := Linear(1, 1, 3); got != 3 {
		t.Errorf("Linear(1) = %v, want 3", got)
	}

	if got := Linear(0.5, 1, 3); got != 2 {
		t.Errorf("Linear(0.5) = %v, want 2", got)
	}
}

func TestHermite4Endpoints(t *testing.T) {
	if got := Hermite4(0, -1, 2, 5, 9); got != 2 {
		t.Errorf("t=0: got %v, want x0", got)
	}

	if got := Hermite4(1, -1, 2, 5, 9); math.Abs(got-5) > 1e-15 {
		t.Errorf("t=1: got %v, want x1", got)
	}
}

func TestHermite4ReproducesLinearRamp(t *testing.T) {
	// A cubic through collinear points is the line itself.
	for _, frac := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		got := Hermite4(frac, 0, 1, 2, 3)
		want := 1 + frac

		if math.Abs(got-want) > 1e-14 {
			t.Errorf("frac=%v: got %v, want %v", frac, got, want)
		}
	}
}

func TestHermite4ReproducesParabola(t *testing.T) {
	// Catmull-Rom has cubic precision on quadratics sampled uniformly.
	f := func(x float64) float64 { return 0.5*x*x - x + 2 }

	for _, frac := range []float64{0.2, 0.5, 0.8} {
		got := Hermite4(frac, f(-1), f(0), f(1), f(2))
		want := f(frac)

		if math.Abs(got-want) > 1e-13 {
			t.Errorf("frac=%v: got %v, want %v", frac, got, want)
		}
	}
}
