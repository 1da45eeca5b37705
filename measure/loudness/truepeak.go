package loudness

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/interp"
)

// PeakResult is the inter-sample peak estimate of a measurement.
type PeakResult struct {
	// Peak is the highest absolute oversampled amplitude, linear.
	Peak float64

	// DB is Peak in dBTP, -Inf for digital silence.
	DB float64
}

// oversampleFractions are the intermediate positions evaluated between
// consecutive samples for 4x true peak estimation.
var oversampleFractions = [3]float64{0.25, 0.5, 0.75}

// channelPeak scans one channel with a sliding four-sample window,
// evaluating the Catmull-Rom interpolant at the oversample fractions
// between each consecutive sample pair. Edge samples are replicated so
// the window is defined at both ends.
func channelPeak(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	at := func(i int) float64 {
		if i < 0 {
			return data[0]
		}

		if i >= n {
			return data[n-1]
		}

		return data[i]
	}

	peak := 0.0

	for i := 0; i < n; i++ {
		if av := math.Abs(data[i]); av > peak {
			peak = av
		}

		if i == n-1 {
			break
		}

		xm1 := at(i - 1)
		x0 := data[i]
		x1 := at(i + 1)
		x2 := at(i + 2)

		for _, frac := range oversampleFractions {
			v := math.Abs(interp.Hermite4(frac, xm1, x0, x1, x2))
			if v > peak {
				peak = v
			}
		}
	}

	return peak
}

// truePeak estimates the true peak over all channels of raw input.
func truePeak(channels [][]float64) PeakResult {
	peak := 0.0

	for _, ch := range channels {
		if p := channelPeak(ch); p > peak {
			peak = p
		}
	}

	return PeakResult{
		Peak: peak,
		DB:   peakDB(peak),
	}
}

// peakDB converts the linear peak to dBTP. Peaks are absolute values,
// so the conversion only ever sees non-negative input.
func peakDB(peak float64) float64 {
	return core.LinearToDB(peak)
}

// peakTracker maintains the streaming true peak of one channel. It
// carries the last three samples across block boundaries so the
// interpolation window never straddles a gap.
type peakTracker struct {
	carry [3]float64
	seen  int
	peak  float64
}

// feed advances the tracker over one block.
func (t *peakTracker) feed(block []float64) {
	for _, x := range block {
		t.push(x)
	}
}

// push shifts one sample into the window. Interpolation needs a full
// four-sample context, so intermediate values between samples i and
// i+1 are evaluated once sample i+2 arrives; before that the raw
// sample magnitude still contributes.
func (t *peakTracker) push(x float64) {
	if av := math.Abs(x); av > t.peak {
		t.peak = av
	}

	if t.seen >= 3 {
		xm1, x0, x1 := t.carry[0], t.carry[1], t.carry[2]
		for _, frac := range oversampleFractions {
			v := math.Abs(interp.Hermite4(frac, xm1, x0, x1, x))
			if v > t.peak {
				t.peak = v
			}
		}
	} else if t.seen == 2 {
		// First interior segment: replicate the leading edge.
		xm1, x0, x1 := t.carry[1], t.carry[1], t.carry[2]
		for _, frac := range oversampleFractions {
			v := math.Abs(interp.Hermite4(frac, xm1, x0, x1, x))
			if v > t.peak {
				t.peak = v
			}
		}
	}

	t.carry[0], t.carry[1], t.carry[2] = t.carry[1], t.carry[2], x

	if t.seen < 3 {
		t.seen++
	}
}

// flush evaluates the trailing segment with a replicated final sample
// and returns the tracked peak.
func (t *peakTracker) flush() float64 {
	if t.seen >= 3 {
		xm1, x0, x1 := t.carry[0], t.carry[1], t.carry[2]
		for _, frac := range oversampleFractions {
			v := math.Abs(interp.Hermite4(frac, xm1, x0, x1, x1))
			if v > t.peak {
				t.peak = v
			}
		}
	}

	return t.peak
}

func (t *peakTracker) reset() {
	*t = peakTracker{}
}
