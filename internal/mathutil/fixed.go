// Package mathutil provides the numeric helpers behind envelope evaluation:
// fixed-point channel conversion and cubic bezier evaluation.
package mathutil

import "math"

// FixedToFloat decodes a fixed-point channel value.
// Values carry fixedFractionBits fractional bits, so 1024 decodes to 1.0.
func FixedToFloat(v int32) float64 {
	return float64(v) / fixedOne
}

// FixedSumToFloat decodes the sum of two fixed-point values.
// The addition is done in 64-bit integer space so handle offsets near the
// int32 limits do not wrap before decoding.
func FixedSumToFloat(a, b int32) float64 {
	return float64(int64(a)+int64(b)) / fixedOne
}

// FloatToFixed encodes a float as a fixed-point channel value, rounding to
// the nearest step. Out-of-range input saturates and NaN encodes as 0.
func FloatToFixed(v float64) int32 {
	if math.IsNaN(v) {
		return 0
	}
	scaled := math.Round(v * fixedOne)
	if scaled >= math.MaxInt32 {
		return math.MaxInt32
	}
	if scaled <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(scaled)
}

// ClampInt clamps v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
