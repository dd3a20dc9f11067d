package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedToFloat(t *testing.T) {
	tests := []struct {
		name     string
		in       int32
		expected float64
	}{
		{"Zero", 0, 0},
		{"One", 1024, 1},
		{"Half", 512, 0.5},
		{"Negative", -2048, -2},
		{"Smallest step", 1, 1.0 / 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, FixedToFloat(tt.in), 1e-12)
		})
	}
}

func TestFixedSumToFloat_NoWrap(t *testing.T) {
	got := FixedSumToFloat(math.MaxInt32, 1024)
	assert.Greater(t, got, FixedToFloat(math.MaxInt32), "sum must not wrap around")
	assert.InDelta(t, 1.5, FixedSumToFloat(1024, 512), 1e-12)
}

func TestFloatToFixed(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected int32
	}{
		{"Zero", 0, 0},
		{"One", 1, 1024},
		{"Rounds up", 0.0009765625 * 0.6, 1},
		{"Rounds down", 0.0009765625 * 0.4, 0},
		{"Negative", -0.25, -256},
		{"NaN", math.NaN(), 0},
		{"Saturates high", 1e12, math.MaxInt32},
		{"Saturates low", -1e12, math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FloatToFixed(tt.in))
		})
	}
}

func TestFixedRoundTrip(t *testing.T) {
	for _, v := range []int32{-100000, -1024, -1, 0, 1, 333, 1024, 65536} {
		assert.Equal(t, v, FloatToFixed(FixedToFloat(v)), "round trip of %d", v)
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, ClampInt(0, 1, 4))
	assert.Equal(t, 4, ClampInt(99, 1, 4))
	assert.Equal(t, 3, ClampInt(3, 1, 4))
	assert.Equal(t, 1, ClampInt(-7, 1, 4))
}
