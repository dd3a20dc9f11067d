// Package envelope implements the animation envelopes of the map editor.
//
// An envelope is an ordered list of keyframes ("points") that animate up to
// four channels, for example the R, G, B and A of a color or the X, Y and
// rotation of a position. Between two points the value follows the curve type
// of the earlier point: step, linear, slow, fast, smooth or a cubic bezier
// shaped by per-channel tangent handles.
//
// # Quick Start
//
//	env := envelope.New(4)
//	env.SetName("pulse")
//	env.AddPoint(0, 0, 0, 0, 1024)
//	env.AddPoint(1000, 1024, 1024, 1024, 1024)
//
//	channels, color := env.Eval(0.5)
//
// # Values and Times
//
// Point times are integer milliseconds. Channel values and bezier Y deltas
// are fixed-point integers with 10 fractional bits (1024 is 1.0); they are
// decoded to floats only when the envelope is evaluated or its bounds are
// computed, so repeated edits never accumulate rounding error. Bezier X
// deltas are milliseconds.
//
// # Ordering
//
// Points are kept sorted by time. Every mutating method re-sorts the points
// and recomputes the cached bounds ([Envelope.Bottom], [Envelope.Top])
// before returning. Points sharing a time keep their insertion order.
//
// # Evaluation
//
// [Envelope.Eval] converts seconds to a [time.Duration] and hands a
// read-only [PointAccess] view to a [Sampler]. The default sampler,
// [SampleCurve], loops over the envelope's duration and returns the zero
// color for an envelope without points. A custom sampler may be installed
// with [Envelope.SetSampler].
//
// # Thread Safety
//
// Envelopes are meant to be driven from a single editor thread. They do no
// locking; callers must serialize mutations and must not read a
// [PointAccess] view while the envelope is being modified.
package envelope
