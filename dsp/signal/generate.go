// Package signal generates deterministic test and calibration signals
// for exercising meters and filters.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-loudness/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("signal: sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// BandLimitedNoise generates deterministic noise whose spectrum is
// confined to [lowHz, highHz] by frequency-domain shaping: white noise
// is transformed, out-of-band bins are zeroed, and the result is
// transformed back and normalized to the requested peak amplitude.
func (g *Generator) BandLimitedNoise(lowHz, highHz, amplitude float64, samples int) ([]float64, error) {
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("signal: noise sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if lowHz < 0 || highHz <= lowHz || highHz > g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("signal: invalid band [%f, %f] at rate %f", lowHz, highHz, g.cfg.SampleRate)
	}

	white, err := g.WhiteNoise(1, samples)
	if err != nil {
		return nil, err
	}

	fftSize := nextPowerOf2(samples)

	inData := make([]complex128, fftSize)
	for i, v := range white {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("signal: failed to create FFT plan: %w", err)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, inData); err != nil {
		return nil, fmt.Errorf("signal: forward FFT failed: %w", err)
	}

	// Zero out-of-band bins, keeping conjugate symmetry so the inverse
	// transform stays real-valued.
	binHz := g.cfg.SampleRate / float64(fftSize)

	freq[0] = 0 // DC
	for k := 1; k <= fftSize/2; k++ {
		f := float64(k) * binHz
		if f < lowHz || f > highHz {
			freq[k] = 0
			freq[fftSize-k] = 0
		}
	}

	shaped := make([]complex128, fftSize)
	if err := plan.Inverse(shaped, freq); err != nil {
		return nil, fmt.Errorf("signal: inverse FFT failed: %w", err)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = real(shaped[i])
	}

	return Normalize(out, amplitude)
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
