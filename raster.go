package envelope

import (
	"fmt"
	"math"

	"github.com/88998347/ddnet-android-ci/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Polyline is one channel of an envelope sampled at evenly spaced times.
type Polyline struct {
	// Times holds the sample times in seconds.
	Times []float64

	// Values holds the channel value at each sample time.
	Values []float64
}

// Vertices returns the polyline as an interleaved x,y buffer with x in
// milliseconds, the layout used by the curve editor.
func (p *Polyline) Vertices() []float64 {
	return simdops.Vertices(p.Times, p.Values, millisPerSecond)
}

// Rasterize samples channel at n evenly spaced times over [start, end]
// seconds, both ends included.
func (e *Envelope) Rasterize(channel int, start, end float64, n int) (*Polyline, error) {
	if channel < 0 || channel >= e.channels {
		return nil, fmt.Errorf("%w: channel %d outside [0, %d)", ErrInvalidRange, channel, e.channels)
	}
	if n < minRasterSamples {
		return nil, fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidRange, minRasterSamples, n)
	}
	if !isFinite(start) || !isFinite(end) || end < start {
		return nil, fmt.Errorf("%w: bad interval [%v, %v]", ErrInvalidRange, start, end)
	}

	line := &Polyline{
		Times:  floats.Span(make([]float64, n), start, end),
		Values: make([]float64, n),
	}
	for i, t := range line.Times {
		_, color := e.Eval(t)
		line.Values[i] = color[channel]
	}
	return line, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
