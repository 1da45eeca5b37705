package loudness

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// loudnessOffset is the calibration constant of the BS.1770 loudness
// equation: L = -0.691 + 10*log10(meanSquare).
const loudnessOffset = -0.691

// Block is one windowed measurement of the loudness series.
type Block struct {
	// Time is the window center in seconds from the start of the input.
	Time float64

	// MeanSquare is the channel-summed mean square energy of the window.
	MeanSquare float64

	// Loudness is the block loudness in LUFS.
	Loudness float64
}

// toLUFS converts a channel-summed mean square to loudness in LUFS.
// Non-positive energy maps to -Inf, the loudness of digital silence.
func toLUFS(meanSquare float64) float64 {
	if meanSquare <= 0 {
		return math.Inf(-1)
	}

	return loudnessOffset + core.LinearPowerToDB(meanSquare)
}

// combinedPower computes the per-sample power track summed over
// channels: p[i] = sum_ch x_ch[i]^2. Summing mean squares per channel
// and taking the mean of this track are interchangeable, so a single
// track serves every window size.
func combinedPower(channels [][]float64) []float64 {
	n := len(channels[0])
	power := make([]float64, n)
	scratch := make([]float64, n)

	for _, ch := range channels {
		vecmath.MulBlock(scratch, ch, ch)
		vecmath.AddBlockInPlace(power, scratch)
	}

	return power
}

// prefixSums returns the running sums of power with a leading zero, so
// that the sum over [start, start+length) is sums[start+length]-sums[start].
func prefixSums(power []float64) []float64 {
	sums := make([]float64, len(power)+1)

	acc := 0.0
	for i, p := range power {
		acc += p
		sums[i+1] = acc
	}

	return sums
}

// windowSeries slices the prefix-summed power track into windows of the
// given spec and converts each to a Block. Trailing samples that do not
// fill a window are ignored.
func windowSeries(sums []float64, spec windowSpec, sampleRate float64) []Block {
	total := len(sums) - 1

	count := spec.numWindows(total)
	if count <= 0 {
		return nil
	}

	blocks := make([]Block, count)
	invLen := 1.0 / float64(spec.Length)

	for i := range blocks {
		start := i * spec.Hop
		ms := (sums[start+spec.Length] - sums[start]) * invLen

		blocks[i] = Block{
			Time:       (float64(start) + float64(spec.Length)/2) / sampleRate,
			MeanSquare: ms,
			Loudness:   toLUFS(ms),
		}
	}

	return blocks
}
