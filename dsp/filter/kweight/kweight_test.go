package kweight

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-loudness/internal/testutil"
)

const fs = 48000.0

func TestResponseShape(t *testing.T) {
	chain := New(fs)

	// Strong attenuation in the sub-bass.
	if db := chain.MagnitudeDB(10, fs); db > -25 {
		t.Errorf("10 Hz: %v dB, want below -25", db)
	}

	// Near unity through the midrange.
	if db := chain.MagnitudeDB(1000, fs); math.Abs(db) > 1 {
		t.Errorf("1 kHz: %v dB, want within 1 dB of unity", db)
	}

	// Full shelf gain at the top of the band.
	if db := chain.MagnitudeDB(16000, fs); math.Abs(db-4) > 0.5 {
		t.Errorf("16 kHz: %v dB, want about +4", db)
	}

	// Response is monotonically rising from sub-bass to the shelf region.
	prev := math.Inf(-1)
	for _, f := range []float64{20, 40, 60, 120, 250, 500} {
		db := chain.MagnitudeDB(f, fs)
		if db < prev {
			t.Errorf("%v Hz: %v dB dips below previous %v dB", f, db, prev)
		}
		prev = db
	}
}

func TestResponseMatchesImpulse(t *testing.T) {
	// The analytic magnitude must agree with a measurement taken from
	// the realized filter: a single-bin DFT of its impulse response.
	// 8192 samples leave the slowest mode (the 60 Hz highpass pole)
	// decayed far below the tolerance.
	chain := New(fs)
	ir := chain.ImpulseResponse(8192)

	for _, freq := range []float64{100, 500, 1000, 4000, 10000} {
		var re, im float64
		for n, v := range ir {
			phase := 2 * math.Pi * freq * float64(n) / fs
			re += v * math.Cos(phase)
			im -= v * math.Sin(phase)
		}

		measured := 20 * math.Log10(math.Hypot(re, im))
		analytic := chain.MagnitudeDB(freq, fs)

		if math.Abs(measured-analytic) > 0.2 {
			t.Errorf("%v Hz: measured %v dB vs analytic %v dB", freq, measured, analytic)
		}
	}
}

func TestStatePersistsAcrossBlocks(t *testing.T) {
	sig := testutil.DeterministicSine(440, fs, 0.8, 4096)

	whole := New(fs)
	wholeOut := make([]float64, len(sig))
	copy(wholeOut, sig)
	whole.ProcessBlock(wholeOut)

	split := New(fs)
	splitOut := make([]float64, len(sig))
	copy(splitOut, sig)

	for start := 0; start < len(splitOut); start += 512 {
		end := min(start+512, len(splitOut))
		split.ProcessBlock(splitOut[start:end])
	}

	testutil.RequireSliceNearlyEqual(t, splitOut, wholeOut, 1e-12)
}

func TestBankChannelsIndependent(t *testing.T) {
	bank := NewBank(2, fs)

	left := testutil.DeterministicSine(1000, fs, 1.0, 1024)
	silent := make([]float64, 1024)

	bank.ProcessBlock(0, left)
	bank.ProcessBlock(1, silent)

	for i, v := range silent {
		if v != 0 {
			t.Fatalf("silent channel disturbed at %d: %v", i, v)
		}
	}

	if bank.Channels() != 2 {
		t.Errorf("Channels = %d, want 2", bank.Channels())
	}
}

func TestBankReset(t *testing.T) {
	bank := NewBank(1, fs)

	sig := testutil.DeterministicSine(100, fs, 1.0, 256)
	first := make([]float64, len(sig))
	copy(first, sig)
	bank.ProcessBlock(0, first)

	bank.Reset()

	second := make([]float64, len(sig))
	copy(second, sig)
	bank.ProcessBlock(0, second)

	testutil.RequireSliceNearlyEqual(t, second, first, 0)
}

func TestNewPanicsOnInvalidRate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero sample rate")
		}
	}()

	New(0)
}
