package loudness

import "math"

const (
	// absoluteGate is the absolute gating threshold in LUFS.
	absoluteGate = -70.0

	// relativeGateOffset is the relative gate in LU below the
	// preliminary ungated estimate.
	relativeGateOffset = 10.0
)

// GateResult is the outcome of two-stage gated integration.
type GateResult struct {
	// Loudness is the gated integrated loudness in LUFS, -Inf when no
	// block survives the absolute gate.
	Loudness float64

	// Threshold is the applied relative threshold in LUFS, NaN when the
	// absolute gate removed everything.
	Threshold float64

	// Count is the number of blocks contributing to the final estimate.
	Count int
}

// gatedLoudness integrates the Momentary block series with two-stage
// gating: blocks at or below the absolute gate are dropped, a
// preliminary loudness of the survivors sets a relative threshold
// 10 LU lower, and blocks below that threshold are dropped in a single
// second pass.
func gatedLoudness(blocks []Block) GateResult {
	var (
		absSum   float64
		absCount int
	)

	for _, b := range blocks {
		if b.Loudness > absoluteGate {
			absSum += b.MeanSquare
			absCount++
		}
	}

	if absCount == 0 {
		return GateResult{
			Loudness:  math.Inf(-1),
			Threshold: math.NaN(),
		}
	}

	prelim := toLUFS(absSum / float64(absCount))
	threshold := prelim - relativeGateOffset

	var (
		relSum   float64
		relCount int
	)

	for _, b := range blocks {
		if b.Loudness > absoluteGate && b.Loudness >= threshold {
			relSum += b.MeanSquare
			relCount++
		}
	}

	if relCount == 0 {
		// Cannot happen for a non-empty absolute pass (the loudest
		// block always clears prelim-10), but fall back to the
		// preliminary estimate rather than divide by zero.
		return GateResult{
			Loudness:  prelim,
			Threshold: threshold,
			Count:     absCount,
		}
	}

	return GateResult{
		Loudness:  toLUFS(relSum / float64(relCount)),
		Threshold: threshold,
		Count:     relCount,
	}
}
