package biquad

import (
	"math"
	"testing"
)

// identity passes the input through unchanged.
var identity = Coefficients{B0: 1}

// testCoeffs is an arbitrary stable biquad used across tests.
var testCoeffs = Coefficients{
	B0: 0.2929, B1: 0.5858, B2: 0.2929,
	A1: -0.0000, A2: 0.1716,
}

func TestSectionIdentity(t *testing.T) {
	s := NewSection(identity)

	for _, x := range []float64{0, 1, -0.5, 0.25, 1e-9} {
		if got := s.ProcessSample(x); got != x {
			t.Fatalf("identity ProcessSample(%v) = %v", x, got)
		}
	}
}

func TestSectionImpulseResponse(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.5, B1: 0.25, B2: 0.125})

	ir := s.ImpulseResponse(4)

	want := []float64{0.5, 0.25, 0.125, 0}
	for i := range want {
		if math.Abs(ir[i]-want[i]) > 1e-15 {
			t.Errorf("ir[%d] = %v, want %v", i, ir[i], want[i])
		}
	}
}

func TestSectionImpulseResponsePreservesState(t *testing.T) {
	s := NewSection(testCoeffs)
	s.ProcessSample(1)
	s.ProcessSample(-1)

	before := s.State()
	s.ImpulseResponse(16)

	if s.State() != before {
		t.Errorf("state changed: got %v, want %v", s.State(), before)
	}
}

func TestProcessBlockMatchesProcessSample(t *testing.T) {
	lengths := []int{0, 1, 2, 3, 7, 64, 257}

	for _, n := range lengths {
		sig := make([]float64, n)
		for i := range sig {
			sig[i] = math.Sin(0.37 * float64(i))
		}

		blockS := NewSection(testCoeffs)
		sampleS := NewSection(testCoeffs)

		block := make([]float64, n)
		copy(block, sig)
		blockS.ProcessBlock(block)

		for i, x := range sig {
			want := sampleS.ProcessSample(x)
			if math.Abs(block[i]-want) > 1e-12 {
				t.Fatalf("n=%d: block[%d] = %v, want %v", n, i, block[i], want)
			}
		}

		if blockS.State() != sampleS.State() {
			t.Fatalf("n=%d: state mismatch: %v vs %v", n, blockS.State(), sampleS.State())
		}
	}
}

func TestProcessBlockTo(t *testing.T) {
	src := []float64{1, 0, -1, 0.5, 0.25}

	inPlace := NewSection(testCoeffs)
	buf := make([]float64, len(src))
	copy(buf, src)
	inPlace.ProcessBlock(buf)

	toDst := NewSection(testCoeffs)
	dst := make([]float64, len(src))
	toDst.ProcessBlockTo(dst, src)

	for i := range src {
		if math.Abs(dst[i]-buf[i]) > 1e-12 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], buf[i])
		}
	}
}

func TestSectionStateRoundTrip(t *testing.T) {
	s := NewSection(testCoeffs)
	s.ProcessSample(1)
	s.ProcessSample(0.5)

	saved := s.State()
	next := s.ProcessSample(0.25)

	s.SetState(saved)
	if got := s.ProcessSample(0.25); got != next {
		t.Errorf("restored state produced %v, want %v", got, next)
	}

	s.Reset()
	if s.State() != [2]float64{} {
		t.Errorf("Reset left state %v", s.State())
	}
}
