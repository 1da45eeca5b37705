// Package interp provides fractional-position interpolation kernels
// for sample-accurate peak search and resampling tasks.
package interp
