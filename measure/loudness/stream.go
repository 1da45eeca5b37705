package loudness

import "github.com/cwbudde/algo-loudness/dsp/buffer"

// channelState holds the per-channel windowed energy accumulators of a
// Stream. The rings store squared samples; the running sums track the
// current window energy in constant time per sample.
type channelState struct {
	mom      *buffer.Ring
	short    *buffer.Ring
	momSum   float64
	shortSum float64
	peak     peakTracker
}

// Stream measures loudness incrementally from already K-weighted
// blocks. Feed one block per call; a Result snapshot is emitted once
// per hop. Callers that start from raw audio apply a kweight.Bank to
// each block before feeding it, and track raw-signal true peak
// separately if they need dBTP of the unweighted signal.
type Stream struct {
	cfg       Config
	momSpec   windowSpec
	shortSpec windowSpec

	channels []channelState

	frames   int64 // total frames consumed
	sinceHop int   // frames since the last emission

	momSeries   []Block
	shortSeries []Block

	running bool
}

// NewStream creates a streaming loudness meter.
func NewStream(opts ...Option) (*Stream, error) {
	cfg := ApplyOptions(opts...)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	momSpec := newWindowSpec(cfg.MomentaryWindow, cfg.Hop, cfg.SampleRate)
	shortSpec := newWindowSpec(cfg.ShortTermWindow, cfg.Hop, cfg.SampleRate)

	channels := make([]channelState, cfg.Channels)
	for i := range channels {
		channels[i].mom = buffer.NewRing(momSpec.Length)
		channels[i].short = buffer.NewRing(shortSpec.Length)
	}

	return &Stream{
		cfg:       cfg,
		momSpec:   momSpec,
		shortSpec: shortSpec,
		channels:  channels,
		running:   true,
	}, nil
}

// Config returns the stream configuration.
func (s *Stream) Config() Config {
	return s.cfg
}

// Running reports whether the stream still accepts blocks.
func (s *Stream) Running() bool {
	return s.running
}

// Feed consumes one multichannel block and returns a Result snapshot
// when a hop boundary was crossed, nil otherwise. The block is one
// slice per channel, all of equal length; blocks shorter or longer than
// the hop are fine, at most one snapshot is emitted per call.
func (s *Stream) Feed(block [][]float64) (*Result, error) {
	if !s.running {
		return nil, ErrStreamStopped
	}

	if len(block) != len(s.channels) {
		return nil, ErrChannelCount
	}

	for _, ch := range block[1:] {
		if len(ch) != len(block[0]) {
			return nil, ErrChannelLength
		}
	}

	frames := len(block[0])
	emitted := false

	for i := 0; i < frames; i++ {
		for c := range s.channels {
			st := &s.channels[c]
			x := block[c][i]
			sq := x * x

			st.momSum += sq - st.mom.Push(sq)
			st.shortSum += sq - st.short.Push(sq)

			// Running sums drift slightly under cancellation; they can
			// never be negative for squared inputs.
			if st.momSum < 0 {
				st.momSum = 0
			}

			if st.shortSum < 0 {
				st.shortSum = 0
			}

			st.peak.push(x)
		}

		s.frames++
		s.sinceHop++

		if s.sinceHop >= s.momSpec.Hop {
			s.sinceHop -= s.momSpec.Hop
			s.appendBlocks()

			emitted = true
		}
	}

	if !emitted {
		return nil, nil
	}

	return s.snapshot(), nil
}

// appendBlocks records one Momentary and one Short-term block from the
// current window state. During ramp-up the divisor is the number of
// samples actually buffered, so early blocks measure the partial window
// instead of diluting it with implicit silence.
func (s *Stream) appendBlocks() {
	var momSum, shortSum float64

	momFill := s.momSpec.Length
	shortFill := s.shortSpec.Length

	for c := range s.channels {
		st := &s.channels[c]
		momSum += st.momSum
		shortSum += st.shortSum

		if f := st.mom.Filled(); f < momFill {
			momFill = f
		}

		if f := st.short.Filled(); f < shortFill {
			shortFill = f
		}
	}

	now := float64(s.frames) / s.cfg.SampleRate

	if momFill > 0 {
		ms := momSum / float64(momFill)
		s.momSeries = append(s.momSeries, Block{
			Time:       now - float64(momFill)/(2*s.cfg.SampleRate),
			MeanSquare: ms,
			Loudness:   toLUFS(ms),
		})
	}

	if shortFill > 0 {
		ms := shortSum / float64(shortFill)
		s.shortSeries = append(s.shortSeries, Block{
			Time:       now - float64(shortFill)/(2*s.cfg.SampleRate),
			MeanSquare: ms,
			Loudness:   toLUFS(ms),
		})
	}

	if s.cfg.MaxHistory > 0 {
		s.momSeries = trimHistory(s.momSeries, s.cfg.MaxHistory)
		s.shortSeries = trimHistory(s.shortSeries, s.cfg.MaxHistory)
	}
}

func trimHistory(blocks []Block, limit int) []Block {
	if len(blocks) <= limit {
		return blocks
	}

	drop := len(blocks) - limit
	copy(blocks, blocks[drop:])

	return blocks[:limit]
}

// snapshot recomputes the derived statistics over the retained history
// and returns an independent Result.
func (s *Stream) snapshot() *Result {
	momentary := make([]Block, len(s.momSeries))
	copy(momentary, s.momSeries)

	shortTerm := make([]Block, len(s.shortSeries))
	copy(shortTerm, s.shortSeries)

	integrated := gatedLoudness(momentary)

	peak := 0.0
	for c := range s.channels {
		if p := s.channels[c].peak.peak; p > peak {
			peak = p
		}
	}

	peakResult := PeakResult{Peak: peak, DB: peakDB(peak)}

	return &Result{
		Momentary:  momentary,
		ShortTerm:  shortTerm,
		Integrated: integrated,
		Range:      loudnessRange(shortTerm, integrated.Loudness),
		Dynamics:   dynamicRange(shortTerm),
		TruePeak:   peakResult,
		PLR:        plr(peakResult.DB, integrated.Loudness),
	}
}

// Result returns the current measurement snapshot without feeding more
// audio. The trailing true peak segment is included.
func (s *Stream) Result() *Result {
	for c := range s.channels {
		s.channels[c].peak.flush()
	}

	return s.snapshot()
}

// Reset returns the stream to its initial state, keeping the
// configuration.
func (s *Stream) Reset() {
	for c := range s.channels {
		st := &s.channels[c]
		st.mom.Zero()
		st.short.Zero()
		st.momSum = 0
		st.shortSum = 0
		st.peak.reset()
	}

	s.frames = 0
	s.sinceHop = 0
	s.momSeries = nil
	s.shortSeries = nil
	s.running = true
}

// Stop finalizes the stream. Further Feed calls fail with
// ErrStreamStopped; Result remains available.
func (s *Stream) Stop() *Result {
	if !s.running {
		return s.snapshot()
	}

	s.running = false

	return s.Result()
}
