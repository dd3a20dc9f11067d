package envelope

import (
	"math"
	"time"

	"github.com/88998347/ddnet-android-ci/internal/mathutil"
)

// SampleCurve is the default Sampler.
//
// Without points it returns the zero color; a single point yields its values
// everywhere. Otherwise t loops over [0, last point time) and the value is
// interpolated between the bracketing pair of points according to the curve
// type of the earlier one. Times outside every pair (negative t) yield the
// last point's values.
func SampleCurve(points PointAccess, channels int, t time.Duration) Color {
	var result Color
	channels = mathutil.ClampInt(channels, 0, MaxChannels)

	n := points.Count()
	if n == 0 {
		return result
	}

	last, _ := points.PointAt(n - 1)
	if n == 1 {
		return valuesOf(last, channels)
	}

	period := time.Duration(last.Time) * time.Millisecond
	if period > 0 {
		t %= period
	} else {
		t = 0
	}
	ms := DurationToMillis(t)

	for i := 0; i < n-1; i++ {
		cur, _ := points.PointAt(i)
		next, _ := points.PointAt(i + 1)
		if ms < float64(cur.Time) || ms > float64(next.Time) {
			continue
		}

		span := float64(next.Time) - float64(cur.Time)
		var a float64
		if span > 0 {
			a = (ms - float64(cur.Time)) / span
		}

		switch cur.Curve {
		case CurveStep:
			a = 0
		case CurveSlow:
			a = a * a * a
		case CurveFast:
			a = 1 - a
			a = 1 - a*a*a
		case CurveSmooth:
			a = a * a * (3 - 2*a)
		case CurveBezier:
			if color, ok := sampleBezier(points, i, cur, next, channels, ms); ok {
				return color
			}
		}

		for c := 0; c < channels; c++ {
			v0 := cur.Value(c)
			v1 := next.Value(c)
			result[c] = v0 + (v1-v0)*a
		}
		return result
	}

	return valuesOf(last, channels)
}

// sampleBezier evaluates a bezier segment per channel. The out-handle of cur
// and the in-handle of next act as the inner control points; their time
// offsets are clamped into the segment so the curve stays a function of time.
// Returns false when tangent data is unavailable.
func sampleBezier(points PointAccess, i int, cur, next Point, channels int, ms float64) (Color, bool) {
	var result Color

	curBezier, ok := points.BezierAt(i)
	if !ok {
		return result, false
	}
	nextBezier, ok := points.BezierAt(i + 1)
	if !ok {
		return result, false
	}

	x0 := float64(cur.Time)
	x3 := float64(next.Time)
	for c := 0; c < channels; c++ {
		y0 := cur.Value(c)
		y3 := next.Value(c)

		x1 := min(max(x0+float64(curBezier.OutDeltaX[c]), x0), x3)
		y1 := y0 + mathutil.FixedToFloat(curBezier.OutDeltaY[c])
		x2 := min(max(x3+float64(nextBezier.InDeltaX[c]), x0), x3)
		y2 := y3 + mathutil.FixedToFloat(nextBezier.InDeltaY[c])

		a := mathutil.SolveBezier(ms, x0, x1, x2, x3)
		if math.IsNaN(a) {
			a = 0
		}
		a = min(max(a, 0), 1)
		result[c] = mathutil.Bezier(y0, y1, y2, y3, a)
	}
	return result, true
}

func valuesOf(p Point, channels int) Color {
	var result Color
	for c := 0; c < channels; c++ {
		result[c] = p.Value(c)
	}
	return result
}
