package envelope

import (
	"math"
	"time"
)

// SecondsToDuration converts floating seconds to a duration, rounding to the
// nearest nanosecond. NaN converts to 0 and values beyond the duration range
// saturate.
func SecondsToDuration(seconds float64) time.Duration {
	if math.IsNaN(seconds) {
		return 0
	}
	ns := math.Round(seconds * float64(time.Second))
	if ns >= math.MaxInt64 {
		return math.MaxInt64
	}
	if ns <= math.MinInt64 {
		return math.MinInt64
	}
	return time.Duration(ns)
}

// MillisToSeconds converts a point time to seconds.
func MillisToSeconds(ms int32) float64 {
	return float64(ms) / millisPerSecond
}

// DurationToMillis converts a duration to fractional milliseconds, the unit
// point times are compared in.
func DurationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
