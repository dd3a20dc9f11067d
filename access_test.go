package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointAccess_BoundsCheck(t *testing.T) {
	env := New(1)
	env.AddPoint(0, 1)
	env.AddPoint(100, 2)
	env.AddPoint(200, 3)

	view := env.Points()
	require.Equal(t, 3, view.Count())

	for i := 0; i < 3; i++ {
		p, ok := view.PointAt(i)
		assert.True(t, ok, "PointAt(%d)", i)
		assert.Equal(t, int32(i+1), p.Values[0])

		_, ok = view.BezierAt(i)
		assert.True(t, ok, "BezierAt(%d)", i)
	}

	for _, idx := range []int{-1, 3, 100} {
		_, ok := view.PointAt(idx)
		assert.False(t, ok, "PointAt(%d) should signal not found", idx)

		_, ok = view.BezierAt(idx)
		assert.False(t, ok, "BezierAt(%d) should signal not found", idx)
	}
}

func TestPointAccess_EmptyStore(t *testing.T) {
	view := New(1).Points()

	assert.Zero(t, view.Count())
	_, ok := view.PointAt(0)
	assert.False(t, ok)
}

// TestPointAccess_ReadsLiveState verifies the view is not a snapshot.
func TestPointAccess_ReadsLiveState(t *testing.T) {
	env := New(1)
	view := env.Points()

	env.AddPoint(1000, 7)
	assert.Equal(t, 1, view.Count())

	env.AddPoint(0, 3)
	p, ok := view.PointAt(0)
	require.True(t, ok)
	assert.Equal(t, int32(3), p.Values[0], "view follows re-sort")
}

func TestPointAccess_BezierData(t *testing.T) {
	env := New(2)
	p := NewPoint(0, 0, 0)
	p.Curve = CurveBezier
	p.Bezier.OutDeltaX = [MaxChannels]int32{10, 20}
	p.Bezier.InDeltaY = [MaxChannels]int32{-5, -6}
	_, err := env.InsertPoint(p)
	require.NoError(t, err)

	b, ok := env.Points().BezierAt(0)
	require.True(t, ok)
	assert.Equal(t, p.Bezier, b)
}

func TestPointAccess_CopiesAreReadOnly(t *testing.T) {
	env := New(1)
	env.AddPoint(0, 5)

	p, _ := env.Points().PointAt(0)
	p.Values[0] = 500

	again, _ := env.Points().PointAt(0)
	assert.Equal(t, int32(5), again.Values[0])
}
