package kweight

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/filter/biquad"
	"github.com/cwbudde/algo-loudness/dsp/filter/design"
)

// K-weighting stage parameters.
const (
	highpassFreq = 60.0

	shelfFreq   = 4000.0
	shelfGainDB = 4.0
)

const stageQ = 1 / math.Sqrt2

// Sections returns the two biquad coefficient sets of the K-weighting
// cascade (high-pass first, then high-shelf) for the given sample rate.
func Sections(sampleRate float64) []biquad.Coefficients {
	return []biquad.Coefficients{
		design.Highpass(highpassFreq, stageQ, sampleRate),
		design.HighShelf(shelfFreq, shelfGainDB, stageQ, sampleRate),
	}
}

// New returns a [biquad.Chain] configured as a K-weighting filter for
// one channel at the specified sample rate.
//
// Panics if sampleRate <= 0.
func New(sampleRate float64) *biquad.Chain {
	if sampleRate <= 0 {
		panic("kweight: sample rate must be positive")
	}

	return biquad.NewChain(Sections(sampleRate))
}

// Bank is a set of independent K-weighting filters, one per channel.
// Filtering one channel never disturbs the state of another.
type Bank struct {
	chains []*biquad.Chain
}

// NewBank returns a Bank with one filter per channel.
//
// Panics if channels <= 0 or sampleRate <= 0.
func NewBank(channels int, sampleRate float64) *Bank {
	if channels <= 0 {
		panic("kweight: channel count must be positive")
	}

	chains := make([]*biquad.Chain, channels)
	for i := range chains {
		chains[i] = New(sampleRate)
	}

	return &Bank{chains: chains}
}

// Channels returns the number of per-channel filters in the bank.
func (b *Bank) Channels() int {
	return len(b.chains)
}

// Channel returns the filter for channel ch, for state inspection.
func (b *Bank) Channel(ch int) *biquad.Chain {
	return b.chains[ch]
}

// ProcessBlock filters one channel's samples in-place. The channel's
// filter state carries over to the next call.
func (b *Bank) ProcessBlock(ch int, buf []float64) {
	b.chains[ch].ProcessBlock(buf)
}

// Reset clears the delay lines of every channel.
func (b *Bank) Reset() {
	for _, c := range b.chains {
		c.Reset()
	}
}
