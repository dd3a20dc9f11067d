package envelope

import (
	"cmp"
	"slices"
	"sort"

	"github.com/88998347/ddnet-android-ci/internal/mathutil"
)

// pointStore keeps the points of one envelope ordered by time together
// with the bounds of the tracked channels.
type pointStore struct {
	points []Point

	bottom float64
	top    float64
}

// insert appends p and re-sorts. Equal-time points keep insertion order, so
// p lands after any existing point with the same time. Returns p's index.
func (s *pointStore) insert(p Point, channels int) int {
	s.points = append(s.points, p)
	s.resort(channels)

	// first point after p's time; p is the one right before it
	end := sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Time > p.Time
	})
	return end - 1
}

// resort orders the points by time and recomputes bounds for all channels.
func (s *pointStore) resort(channels int) {
	slices.SortStableFunc(s.points, func(a, b Point) int {
		return cmp.Compare(a.Time, b.Time)
	})
	s.findTopBottom(channels, allChannelsMask)
}

// findTopBottom recomputes bottom and top over the channels selected by mask
// (bit c selects channel c, c < channels). Besides the point values it
// includes the out-handle of bezier points and the in-handle of points that
// follow a bezier point, since both are drawn by the curve editor.
func (s *pointStore) findTopBottom(channels int, mask uint) {
	s.top = boundsTopSentinel
	s.bottom = boundsBottomSentinel

	var prev *Point
	for i := range s.points {
		p := &s.points[i]
		for c := 0; c < channels; c++ {
			if mask&(1<<c) == 0 {
				continue
			}

			s.include(mathutil.FixedToFloat(p.Values[c]))

			if p.Curve == CurveBezier {
				s.include(mathutil.FixedSumToFloat(p.Values[c], p.Bezier.OutDeltaY[c]))
			}

			if prev != nil && prev.Curve == CurveBezier {
				s.include(mathutil.FixedSumToFloat(p.Values[c], p.Bezier.InDeltaY[c]))
			}
		}
		prev = p
	}
}

func (s *pointStore) include(v float64) {
	s.top = max(s.top, v)
	s.bottom = min(s.bottom, v)
}

func (s *pointStore) valid(index int) bool {
	return index >= 0 && index < len(s.points)
}

func (s *pointStore) endTime() float64 {
	if len(s.points) == 0 {
		return 0
	}
	return MillisToSeconds(s.points[len(s.points)-1].Time)
}
