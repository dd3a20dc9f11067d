package envelope

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondsToDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected time.Duration
	}{
		{"Zero", 0, 0},
		{"Half", 0.5, 500 * time.Millisecond},
		{"Negative", -0.25, -250 * time.Millisecond},
		{"Rounds up", 1.0000000006, time.Second + time.Nanosecond},
		{"Rounds down", 1.0000000004, time.Second},
		{"NaN", math.NaN(), 0},
		{"Positive infinity", math.Inf(1), math.MaxInt64},
		{"Negative infinity", math.Inf(-1), math.MinInt64},
		{"Huge", 1e300, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SecondsToDuration(tt.seconds))
		})
	}
}

func TestMillisToSeconds(t *testing.T) {
	assert.Equal(t, 2.0, MillisToSeconds(2000))
	assert.Equal(t, -0.5, MillisToSeconds(-500))
	assert.Equal(t, 0.0, MillisToSeconds(0))
}

func TestDurationToMillis(t *testing.T) {
	assert.Equal(t, 1500.0, DurationToMillis(1500*time.Millisecond))
	assert.InDelta(t, 0.000001, DurationToMillis(time.Nanosecond), 1e-15)
}
