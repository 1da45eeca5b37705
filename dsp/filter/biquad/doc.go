// Package biquad implements second-order IIR filter sections (biquads)
// in Direct Form II Transposed, plus cascades of sections for
// higher-order filters. Sections expose their delay-line state so that
// callers can persist, inspect, or restore it across block boundaries.
package biquad
