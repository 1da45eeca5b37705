package loudness

import "github.com/cwbudde/algo-loudness/dsp/core"

// Default measurement parameters per BS.1770 / EBU R128.
const (
	DefaultMomentaryWindow = 0.4
	DefaultShortTermWindow = 3.0
	DefaultHop             = 0.1
	DefaultChannels        = 2
)

// Config holds the measurement parameters shared by Measure and Stream.
type Config struct {
	core.ProcessorConfig

	// Channels is the number of input channels.
	Channels int

	// MomentaryWindow is the Momentary analysis window in seconds.
	MomentaryWindow float64

	// ShortTermWindow is the Short-term analysis window in seconds.
	ShortTermWindow float64

	// Hop is the analysis hop in seconds, shared by both window series.
	Hop float64

	// MaxHistory bounds the number of retained Short-term and Momentary
	// blocks in streaming mode. Zero keeps the full history.
	MaxHistory int
}

// DefaultConfig returns the standard R128 measurement configuration.
func DefaultConfig() Config {
	return Config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		Channels:        DefaultChannels,
		MomentaryWindow: DefaultMomentaryWindow,
		ShortTermWindow: DefaultShortTermWindow,
		Hop:             DefaultHop,
	}
}

// Option configures a measurement.
type Option func(*Config)

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(rate float64) Option {
	return func(c *Config) {
		c.SampleRate = rate
	}
}

// WithChannels sets the number of input channels.
func WithChannels(channels int) Option {
	return func(c *Config) {
		c.Channels = channels
	}
}

// WithMomentaryWindow sets the Momentary window length in seconds.
func WithMomentaryWindow(seconds float64) Option {
	return func(c *Config) {
		c.MomentaryWindow = seconds
	}
}

// WithShortTermWindow sets the Short-term window length in seconds.
func WithShortTermWindow(seconds float64) Option {
	return func(c *Config) {
		c.ShortTermWindow = seconds
	}
}

// WithHop sets the analysis hop in seconds.
func WithHop(seconds float64) Option {
	return func(c *Config) {
		c.Hop = seconds
	}
}

// WithMaxHistory bounds the retained block history in streaming mode.
// Zero or negative keeps everything.
func WithMaxHistory(blocks int) Option {
	return func(c *Config) {
		c.MaxHistory = blocks
	}
}

// ApplyOptions builds a Config from defaults plus the given options.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if c.Channels <= 0 {
		return ErrNoChannels
	}

	if c.MomentaryWindow <= 0 || c.ShortTermWindow <= 0 || c.Hop <= 0 {
		return ErrInvalidWindow
	}

	return nil
}
