package loudness

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-loudness/dsp/interp"
)

// RangeResult is a percentile-based spread of a loudness distribution.
type RangeResult struct {
	// Range is High minus Low in LU, zero when the distribution is empty.
	Range float64

	// Low and High are the bounding percentile loudness values in LUFS,
	// NaN when the distribution is empty.
	Low  float64
	High float64

	// Threshold is the gating threshold applied before taking
	// percentiles, NaN when no gate was applied.
	Threshold float64
}

// percentile returns the p-th percentile of sorted values using linear
// interpolation between closest ranks. Returns NaN for empty input.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}

	if n == 1 {
		return sorted[0]
	}

	pos := p / 100 * float64(n-1)

	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	if lo == hi {
		return sorted[lo]
	}

	return interp.Linear(pos-float64(lo), sorted[lo], sorted[hi])
}

// loudnessRange computes LRA: the P10..P95 spread of Short-term block
// loudness gated at 20 LU below the integrated loudness. A non-finite
// integrated loudness yields a zero range with NaN bounds.
func loudnessRange(shortTerm []Block, integrated float64) RangeResult {
	if math.IsInf(integrated, 0) || math.IsNaN(integrated) {
		return RangeResult{
			Low:       math.NaN(),
			High:      math.NaN(),
			Threshold: math.NaN(),
		}
	}

	threshold := integrated - 20

	var values []float64

	for _, b := range shortTerm {
		if b.Loudness >= threshold {
			values = append(values, b.Loudness)
		}
	}

	if len(values) == 0 {
		// Every Short-term block fell below the gate; fall back to the
		// ungated finite values rather than reporting nothing.
		for _, b := range shortTerm {
			if !math.IsInf(b.Loudness, -1) {
				values = append(values, b.Loudness)
			}
		}
	}

	if len(values) == 0 {
		return RangeResult{
			Low:       math.NaN(),
			High:      math.NaN(),
			Threshold: threshold,
		}
	}

	sort.Float64s(values)

	low := percentile(values, 10)
	high := percentile(values, 95)

	return RangeResult{
		Range:     high - low,
		Low:       low,
		High:      high,
		Threshold: threshold,
	}
}

// dynamicRange computes the ungated P5..P95 spread of the Short-term
// block loudness distribution.
func dynamicRange(shortTerm []Block) RangeResult {
	var values []float64

	for _, b := range shortTerm {
		if !math.IsInf(b.Loudness, -1) {
			values = append(values, b.Loudness)
		}
	}

	if len(values) == 0 {
		return RangeResult{
			Low:       math.NaN(),
			High:      math.NaN(),
			Threshold: math.NaN(),
		}
	}

	sort.Float64s(values)

	low := percentile(values, 5)
	high := percentile(values, 95)

	return RangeResult{
		Range:     high - low,
		Low:       low,
		High:      high,
		Threshold: math.NaN(),
	}
}
