package loudness

import (
	"errors"

	"github.com/cwbudde/algo-loudness/dsp/filter/kweight"
)

// Errors returned by loudness measurement.
var (
	ErrNoChannels        = errors.New("loudness: channel count must be positive")
	ErrChannelLength     = errors.New("loudness: channels must have equal length")
	ErrInvalidSampleRate = errors.New("loudness: sample rate must be positive")
	ErrInvalidWindow     = errors.New("loudness: window and hop must be positive")
	ErrStreamStopped     = errors.New("loudness: stream has been stopped")
	ErrChannelCount      = errors.New("loudness: block channel count does not match stream")
)

// Result is a complete loudness measurement.
type Result struct {
	// Momentary is the 400 ms windowed loudness series.
	Momentary []Block

	// ShortTerm is the 3 s windowed loudness series.
	ShortTerm []Block

	// Integrated is the gated integrated loudness.
	Integrated GateResult

	// Range is the loudness range (LRA) from gated Short-term percentiles.
	Range RangeResult

	// Dynamics is the ungated Short-term percentile spread.
	Dynamics RangeResult

	// TruePeak is the 4x oversampled peak of the raw input.
	TruePeak PeakResult

	// PLR is the peak-to-loudness ratio: TruePeak.DB minus integrated
	// loudness. +Inf when a finite peak stands over -Inf loudness, NaN
	// for full silence.
	PLR float64
}

// Measure computes the full loudness statistics of a complete
// multichannel buffer. Channels are per-channel sample slices of equal
// length; the input is not modified.
func Measure(channels [][]float64, opts ...Option) (*Result, error) {
	cfg := ApplyOptions(opts...)
	cfg.Channels = len(channels)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	for _, ch := range channels[1:] {
		if len(ch) != len(channels[0]) {
			return nil, ErrChannelLength
		}
	}

	// True peak observes the raw signal, loudness the K-weighted one.
	peak := truePeak(channels)

	bank := kweight.NewBank(cfg.Channels, cfg.SampleRate)
	weighted := make([][]float64, cfg.Channels)

	for i, ch := range channels {
		weighted[i] = make([]float64, len(ch))
		copy(weighted[i], ch)
		bank.ProcessBlock(i, weighted[i])
	}

	sums := prefixSums(combinedPower(weighted))

	momSpec := newWindowSpec(cfg.MomentaryWindow, cfg.Hop, cfg.SampleRate)
	shortSpec := newWindowSpec(cfg.ShortTermWindow, cfg.Hop, cfg.SampleRate)

	momentary := windowSeries(sums, momSpec, cfg.SampleRate)
	shortTerm := windowSeries(sums, shortSpec, cfg.SampleRate)

	integrated := gatedLoudness(momentary)

	return &Result{
		Momentary:  momentary,
		ShortTerm:  shortTerm,
		Integrated: integrated,
		Range:      loudnessRange(shortTerm, integrated.Loudness),
		Dynamics:   dynamicRange(shortTerm),
		TruePeak:   peak,
		PLR:        plr(peak.DB, integrated.Loudness),
	}, nil
}

// plr is the peak-to-loudness ratio: true peak in dBTP minus
// integrated loudness. The subtraction carries the non-finite cases on
// its own: a finite peak over an unmeasurable loudness gives +Inf,
// while silence has -Inf in both terms and gives NaN.
func plr(peakDB, integrated float64) float64 {
	return peakDB - integrated
}
