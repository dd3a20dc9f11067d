package envelope

// PointAccess is the read-only view of an envelope's points handed to a
// Sampler. Indices are only stable until the next mutation of the envelope.
type PointAccess interface {
	// Count returns the number of points.
	Count() int

	// PointAt returns the point at index, or false if index is outside
	// [0, Count()).
	PointAt(index int) (Point, bool)

	// BezierAt returns the tangent data of the point at index, or false if
	// index is outside [0, Count()).
	BezierAt(index int) (Bezier, bool)
}

// pointView adapts a pointStore to PointAccess. It holds no copy of the
// points, every call reads the store's current state.
type pointView struct {
	store *pointStore
}

func (v pointView) Count() int {
	return len(v.store.points)
}

func (v pointView) PointAt(index int) (Point, bool) {
	if index < 0 || index >= len(v.store.points) {
		return Point{}, false
	}
	return v.store.points[index], true
}

func (v pointView) BezierAt(index int) (Bezier, bool) {
	if index < 0 || index >= len(v.store.points) {
		return Bezier{}, false
	}
	return v.store.points[index].Bezier, true
}
