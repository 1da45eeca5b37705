package loudness

// windowSpec is an analysis window expressed in samples.
type windowSpec struct {
	Length int // window length in samples, at least 1
	Hop    int // hop between consecutive windows in samples, at least 1
}

// newWindowSpec converts window and hop durations to sample counts.
// Both are floored and clamped to a minimum of one sample so that very
// low sample rates still produce usable windows.
func newWindowSpec(windowSec, hopSec, sampleRate float64) windowSpec {
	length := int(windowSec * sampleRate)
	if length < 1 {
		length = 1
	}

	hop := int(hopSec * sampleRate)
	if hop < 1 {
		hop = 1
	}

	return windowSpec{Length: length, Hop: hop}
}

// numWindows returns how many full windows fit in total samples.
func (w windowSpec) numWindows(total int) int {
	if total < w.Length {
		return 0
	}

	return (total-w.Length)/w.Hop + 1
}
