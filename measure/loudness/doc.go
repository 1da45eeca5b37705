// Package loudness measures program loudness and level statistics of
// multichannel audio following the BS.1770 family of algorithms.
//
// The pipeline applies K-weighting (see dsp/filter/kweight), slices the
// weighted signal into overlapping Momentary (400 ms) and Short-term
// (3 s) windows, and reduces the windowed energies into:
//
//   - Integrated loudness with two-stage gating (absolute -70 LUFS,
//     then relative -10 LU below the preliminary estimate)
//   - Loudness range (LRA) from percentiles of the gated Short-term
//     distribution
//   - Dynamic range from ungated Short-term percentiles
//   - True peak via 4x oversampling of the unweighted input
//   - Peak-to-loudness ratio (PLR)
//
// Measure handles complete buffers in one call. Stream accepts blocks
// incrementally and maintains the same statistics with bounded memory.
package loudness
