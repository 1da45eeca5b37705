package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestIdentityResponse(t *testing.T) {
	c := Coefficients{B0: 1}

	for _, f := range []float64{10, 100, 1000, 20000} {
		if got := cmplx.Abs(c.Response(f, 48000)); math.Abs(got-1) > 1e-12 {
			t.Errorf("|H(%v)| = %v, want 1", f, got)
		}

		if got := c.MagnitudeDB(f, 48000); math.Abs(got) > 1e-9 {
			t.Errorf("MagnitudeDB(%v) = %v, want 0", f, got)
		}
	}
}

func TestMagnitudeSquaredMatchesResponse(t *testing.T) {
	c := testCoeffs

	for _, f := range []float64{20, 100, 1000, 4000, 15000} {
		analytic := c.MagnitudeSquared(f, 48000)

		h := c.Response(f, 48000)
		direct := real(h)*real(h) + imag(h)*imag(h)

		if math.Abs(analytic-direct) > 1e-9*math.Max(1, direct) {
			t.Errorf("f=%v: closed form %v vs response %v", f, analytic, direct)
		}
	}
}

func TestChainResponseIsProductOfSections(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.5, B1: 0.5, A1: -0.2},
		{B0: 0.9, B1: -0.3, B2: 0.1, A1: 0.1, A2: 0.05},
	}
	chain := NewChain(coeffs)

	for _, f := range []float64{50, 440, 1000, 8000} {
		want := coeffs[0].Response(f, 48000) * coeffs[1].Response(f, 48000)
		got := chain.Response(f, 48000)

		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("f=%v: chain response %v, want %v", f, got, want)
		}
	}
}

func TestChainImpulseResponse(t *testing.T) {
	chain := NewChain([]Coefficients{{B0: 0.25}}, WithGain(2))

	ir := chain.ImpulseResponse(3)
	want := []float64{0.5, 0, 0}

	for i := range want {
		if math.Abs(ir[i]-want[i]) > 1e-15 {
			t.Errorf("ir[%d] = %v, want %v", i, ir[i], want[i])
		}
	}
}
