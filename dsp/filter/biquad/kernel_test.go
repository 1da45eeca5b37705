package biquad

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-loudness/internal/cpu"
)

func TestKernelForFeatures(t *testing.T) {
	wide := kernelForFeatures(cpu.Features{HasSSE2: true, HasAVX: true, HasAVX2: true})
	narrow := kernelForFeatures(cpu.Features{HasSSE2: true})
	none := kernelForFeatures(cpu.Features{})

	if wide == nil || narrow == nil || none == nil {
		t.Fatal("kernelForFeatures returned nil")
	}
}

func TestKernelsAgree(t *testing.T) {
	kernels := map[string]kernelFn{
		"unrolled2": processBlockUnrolled2,
		"unrolled4": processBlockUnrolled4,
	}

	sig := make([]float64, 129)
	for i := range sig {
		sig[i] = math.Sin(0.11*float64(i)) + 0.3*math.Cos(0.07*float64(i))
	}

	ref := NewSection(testCoeffs)
	want := make([]float64, len(sig))
	for i, x := range sig {
		want[i] = ref.ProcessSample(x)
	}
	wantState := ref.State()

	for name, k := range kernels {
		buf := make([]float64, len(sig))
		copy(buf, sig)

		d0, d1 := k(testCoeffs, 0, 0, buf)

		for i := range want {
			if math.Abs(buf[i]-want[i]) > 1e-12 {
				t.Fatalf("%s: buf[%d] = %v, want %v", name, i, buf[i], want[i])
			}
		}

		if math.Abs(d0-wantState[0]) > 1e-12 || math.Abs(d1-wantState[1]) > 1e-12 {
			t.Fatalf("%s: state (%v, %v), want %v", name, d0, d1, wantState)
		}
	}
}

func TestKernelsEmptyBlock(t *testing.T) {
	d0, d1 := processBlockUnrolled4(testCoeffs, 0.5, -0.25, nil)
	if d0 != 0.5 || d1 != -0.25 {
		t.Errorf("empty block changed state to (%v, %v)", d0, d1)
	}
}
