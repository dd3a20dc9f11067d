package envelope

import (
	"math"
	"testing"

	"github.com/88998347/ddnet-android-ci/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestRasterize_Linear(t *testing.T) {
	env := rampEnvelope(t, CurveLinear)

	line, err := env.Rasterize(0, 0, 0.5, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5}, line.Times, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5}, line.Values, 1e-9)

	assert.InDeltaSlice(t, []float64{0, 0, 250, 0.25, 500, 0.5}, line.Vertices(), 1e-9)
}

// TestRasterize_WithinBounds verifies sampled curves stay inside the bounds
// reported for display scaling, handles included.
func TestRasterize_WithinBounds(t *testing.T) {
	env := New(2)
	for i, ts := range []int32{0, 400, 900, 1500} {
		p := NewPoint(ts, int32(i*300-400), int32(1000-i*200))
		p.Curve = CurveType(i % int(numCurveTypes))
		if i%2 == 0 {
			p.Curve = CurveBezier
			p.Bezier.OutDeltaX = [MaxChannels]int32{100, 100}
			p.Bezier.OutDeltaY = [MaxChannels]int32{300, -300}
			p.Bezier.InDeltaX = [MaxChannels]int32{-100, -100}
			p.Bezier.InDeltaY = [MaxChannels]int32{-200, 200}
		}
		_, err := env.InsertPoint(p)
		require.NoError(t, err)
	}

	for c := 0; c < env.Channels(); c++ {
		line, err := env.Rasterize(c, 0, 1.499, 256)
		require.NoError(t, err)
		testutil.AssertNoNaNOrInf(t, line.Values)
		testutil.AssertBounded(t, line.Values, env.Bottom(), env.Top())
		assert.LessOrEqual(t, floats.Max(line.Values), env.Top()+testutil.DefaultTolerance)
	}
}

func TestRasterize_Errors(t *testing.T) {
	env := New(1)
	env.AddPoint(0, 0)

	tests := []struct {
		name       string
		channel    int
		start, end float64
		n          int
	}{
		{"Channel too high", 1, 0, 1, 10},
		{"Negative channel", -1, 0, 1, 10},
		{"Too few samples", 0, 0, 1, 1},
		{"Reversed interval", 0, 1, 0, 10},
		{"NaN start", 0, math.NaN(), 1, 10},
		{"Infinite end", 0, 0, math.Inf(1), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Rasterize(tt.channel, tt.start, tt.end, tt.n)
			require.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}
