// Package cpu detects SIMD instruction set extensions for DSP kernel
// selection. Detection runs once on first use and is cached.
package cpu

import "sync"

// SIMDLevel identifies a SIMD instruction set extension.
type SIMDLevel int

const (
	// SIMDNone selects the pure Go fallback.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline.
	SIMDSSE2

	// SIMDAVX is x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 is x86-64 AVX2.
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD, mandatory on arm64.
	SIMDNEON
)

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX  bool
	HasAVX2 bool
	HasNEON bool

	// Architecture is runtime.GOARCH at detection time.
	Architecture string
}

var (
	detected   Features
	detectOnce sync.Once
)

// DetectFeatures returns the CPU features of the current system.
// Thread-safe; the underlying detection runs at most once.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})

	return detected
}

// Supports reports whether features satisfy the given SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
