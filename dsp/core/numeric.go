package core

import "math"

// LinearToDB converts a linear amplitude to decibels using the
// 20*log10 convention. Zero maps to -Inf, negative input to NaN.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LinearPowerToDB converts a linear power to decibels using the
// 10*log10 convention. Zero maps to -Inf, negative input to NaN.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// DBPowerToLinear converts decibels back to a linear power
// (10*log10 convention).
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}
