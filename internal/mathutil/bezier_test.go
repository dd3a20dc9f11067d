package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBezier_Endpoints(t *testing.T) {
	assert.InDelta(t, 2.0, Bezier(2, 5, -3, 7, 0), 1e-12)
	assert.InDelta(t, 7.0, Bezier(2, 5, -3, 7, 1), 1e-12)
}

func TestBezier_StraightLine(t *testing.T) {
	// Control points spaced evenly along a line reproduce the line.
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		assert.InDelta(t, 3*x, Bezier(0, 1, 2, 3, x), 1e-12)
	}
}

func TestSolveBezier_InvertsBezier(t *testing.T) {
	tests := []struct {
		name           string
		p0, p1, p2, p3 float64
	}{
		{"Linear spacing", 0, 100, 200, 300},
		{"Ease in", 0, 0, 200, 300},
		{"Ease out", 0, 100, 300, 300},
		{"Clustered", 0, 290, 10, 300},
		{"Offset", 500, 500, 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, param := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
				x := Bezier(tt.p0, tt.p1, tt.p2, tt.p3, param)
				solved := SolveBezier(x, tt.p0, tt.p1, tt.p2, tt.p3)
				assert.InDelta(t, x, Bezier(tt.p0, tt.p1, tt.p2, tt.p3, solved), 1e-6,
					"x(%v) not reproduced", param)
			}
		})
	}
}

func TestSolveBezier_Degenerate(t *testing.T) {
	// All control points at one abscissa: no unique parameter.
	assert.Equal(t, 0.0, SolveBezier(10, 10, 10, 10, 10))
}
