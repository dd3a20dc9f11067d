package envelope

import (
	"fmt"
	"strings"

	"github.com/88998347/ddnet-android-ci/internal/mathutil"
)

// CurveType selects the interpolation applied between a point and its
// successor. The numeric values match the tags stored in map files.
type CurveType int32

const (
	// CurveStep holds the point's value until the next point.
	CurveStep CurveType = iota

	// CurveLinear interpolates linearly.
	CurveLinear

	// CurveSlow starts slowly and accelerates (cubic ease-in).
	CurveSlow

	// CurveFast starts quickly and decelerates (cubic ease-out).
	CurveFast

	// CurveSmooth eases in and out (smoothstep).
	CurveSmooth

	// CurveBezier follows a cubic bezier shaped by the tangent deltas of
	// this point and the next one.
	CurveBezier

	numCurveTypes
)

var curveTypeNames = [numCurveTypes]string{
	CurveStep:   "step",
	CurveLinear: "linear",
	CurveSlow:   "slow",
	CurveFast:   "fast",
	CurveSmooth: "smooth",
	CurveBezier: "bezier",
}

// Valid reports whether c is a known curve type.
func (c CurveType) Valid() bool {
	return c >= CurveStep && c < numCurveTypes
}

func (c CurveType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("CurveType(%d)", int32(c))
	}
	return curveTypeNames[c]
}

// ParseCurveType parses a curve type name as returned by String.
// Matching is case-insensitive.
func ParseCurveType(s string) (CurveType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range curveTypeNames {
		if n == name {
			return CurveType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCurveType, s)
}

// Bezier holds per-channel tangent handles of a point.
// DeltaX offsets are in milliseconds, DeltaY offsets are fixed-point values.
// In-handles point backwards towards the previous point, out-handles point
// forwards towards the next one.
type Bezier struct {
	InDeltaX  [MaxChannels]int32
	InDeltaY  [MaxChannels]int32
	OutDeltaX [MaxChannels]int32
	OutDeltaY [MaxChannels]int32
}

// Point is a single keyframe of an envelope.
type Point struct {
	// Time is the point's position in milliseconds.
	Time int32

	// Values holds one fixed-point value per channel slot.
	// Slots beyond the envelope's channel count are kept but ignored.
	Values [MaxChannels]int32

	// Curve is the interpolation used towards the next point.
	Curve CurveType

	// Bezier is only meaningful for CurveBezier points and their successors.
	Bezier Bezier
}

// NewPoint returns a linear point at time with up to MaxChannels values.
// Missing values are zero and extra values are ignored.
func NewPoint(time int32, values ...int32) Point {
	p := Point{Time: time, Curve: CurveLinear}
	copy(p.Values[:], values)
	return p
}

// Value returns the decoded value of channel c.
func (p Point) Value(c int) float64 {
	return mathutil.FixedToFloat(p.Values[c])
}
