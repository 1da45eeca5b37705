package biquad

import (
	"sync"

	"github.com/cwbudde/algo-loudness/internal/cpu"
)

// kernelFn processes buf in-place with one biquad section and returns the
// updated delay-line state.
type kernelFn func(c Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64)

var (
	blockKernelImpl kernelFn
	blockKernelOnce sync.Once
)

func blockKernel() kernelFn {
	blockKernelOnce.Do(func() {
		blockKernelImpl = kernelForFeatures(cpu.DetectFeatures())
	})

	return blockKernelImpl
}

// kernelForFeatures picks the widest unroll the CPU's register file makes
// worthwhile. The recursion through the delay line keeps a biquad scalar,
// so wider unrolls trade loop overhead for instruction-level parallelism
// rather than using vector lanes directly.
func kernelForFeatures(features cpu.Features) kernelFn {
	if cpu.Supports(features, cpu.SIMDAVX2) || cpu.Supports(features, cpu.SIMDNEON) {
		return processBlockUnrolled4
	}

	return processBlockUnrolled2
}

// processBlockUnrolled2 is a 2x-unrolled scalar kernel.
func processBlockUnrolled2(c Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0

	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}

// processBlockUnrolled4 is a 4x-unrolled scalar kernel for CPUs with a
// larger effective register budget.
func processBlockUnrolled4(c Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0

	n := len(buf)
	for ; i+3 < n; i += 4 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0a := b1*x0 - a1*y0 + d1
		d1a := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0a
		d0b := b1*x1 - a1*y1 + d1a
		d1b := b2*x1 - a2*y1

		x2 := buf[i+2]
		y2 := b0*x2 + d0b
		d0c := b1*x2 - a1*y2 + d1b
		d1c := b2*x2 - a2*y2

		x3 := buf[i+3]
		y3 := b0*x3 + d0c
		d0 = b1*x3 - a1*y3 + d1c
		d1 = b2*x3 - a2*y3

		buf[i] = y0
		buf[i+1] = y1
		buf[i+2] = y2
		buf[i+3] = y3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}
