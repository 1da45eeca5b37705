// Package kweight implements the K-weighting prefilter used by
// BS.1770-style loudness measurement.
//
// The filter is a cascade of two biquad stages: a 60 Hz second-order
// high-pass modelling the reduced loudness sensitivity at low
// frequencies, and a 4 kHz +4 dB high-shelf modelling the acoustic
// effect of the head. Both stages are designed with the RBJ
// bilinear-transform formulas at the requested sample rate.
//
// Each channel gets its own filter instance whose delay-line state
// persists across consecutive blocks, so a stream can be filtered
// block by block without discontinuities.
package kweight
