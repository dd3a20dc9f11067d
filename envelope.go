package envelope

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/88998347/ddnet-android-ci/internal/mathutil"
)

// Color is the result of evaluating an envelope. Only the first Channels()
// entries are meaningful.
type Color [MaxChannels]float64

// Sampler evaluates the curve described by points at time t. channels is
// the number of active channels; entries at or beyond it must be left zero.
type Sampler func(points PointAccess, channels int, t time.Duration) Color

// Common errors returned by envelope operations.
var (
	// ErrPointNotFound indicates a point index outside the envelope.
	ErrPointNotFound = errors.New("envelope point not found")

	// ErrInvalidCurveType indicates an unknown curve type tag or name.
	ErrInvalidCurveType = errors.New("invalid curve type")

	// ErrInvalidRecord indicates a malformed binary point record.
	ErrInvalidRecord = errors.New("invalid point record")

	// ErrInvalidRange indicates invalid rasterization parameters.
	ErrInvalidRange = errors.New("invalid sample range")
)

// Envelope is a named, time-ordered set of keyframes animating up to
// MaxChannels values.
//
// The points are always sorted by time: every mutation re-sorts and
// recomputes the cached bounds before returning. An Envelope is not safe for
// concurrent use.
type Envelope struct {
	store    pointStore
	channels int

	name         string
	synchronized bool
	sampler      Sampler
}

// New creates an empty envelope. channels is clamped into [1, MaxChannels].
func New(channels int) *Envelope {
	e := &Envelope{}
	e.SetChannels(channels)
	return e
}

// Channels returns the number of active channels.
func (e *Envelope) Channels() int {
	return e.channels
}

// SetChannels sets the number of active channels, clamped into
// [1, MaxChannels]. Cached bounds are left untouched until the next Resort.
func (e *Envelope) SetChannels(channels int) {
	e.channels = mathutil.ClampInt(channels, 1, MaxChannels)
}

// Name returns the display name.
func (e *Envelope) Name() string {
	return e.name
}

// SetName sets the display name. Control characters are replaced by spaces
// and the result is truncated to MaxNameLength bytes on a rune boundary.
func (e *Envelope) SetName(name string) {
	e.name = sanitizeName(name)
}

// Synchronized reports whether the envelope follows the server clock.
func (e *Envelope) Synchronized() bool {
	return e.synchronized
}

// SetSynchronized sets the synchronization flag.
func (e *Envelope) SetSynchronized(synchronized bool) {
	e.synchronized = synchronized
}

// Bottom returns the cached lower bound of the tracked channels.
func (e *Envelope) Bottom() float64 {
	return e.store.bottom
}

// Top returns the cached upper bound of the tracked channels.
func (e *Envelope) Top() float64 {
	return e.store.top
}

// SetSampler replaces the curve sampler used by Eval.
// A nil sampler restores SampleCurve.
func (e *Envelope) SetSampler(s Sampler) {
	e.sampler = s
}

// Points returns a read-only view of the points. The view reflects later
// mutations of e and must not be used after e is discarded.
func (e *Envelope) Points() PointAccess {
	return pointView{store: &e.store}
}

// Len returns the number of points.
func (e *Envelope) Len() int {
	return len(e.store.points)
}

// AddPoint inserts a linear point at time (milliseconds) with up to
// MaxChannels fixed-point values and returns the index it was placed at.
// A point with the same time as existing points is placed after them.
func (e *Envelope) AddPoint(time int32, values ...int32) int {
	return e.store.insert(NewPoint(time, values...), e.channels)
}

// InsertPoint inserts p as is and returns the index it was placed at.
func (e *Envelope) InsertPoint(p Point) (int, error) {
	if !p.Curve.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCurveType, int32(p.Curve))
	}
	return e.store.insert(p, e.channels), nil
}

// SetPoint replaces the point at index. The point may move if its time
// changed.
func (e *Envelope) SetPoint(index int, p Point) error {
	if !e.store.valid(index) {
		return fmt.Errorf("%w: index %d of %d", ErrPointNotFound, index, e.Len())
	}
	if !p.Curve.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCurveType, int32(p.Curve))
	}
	e.store.points[index] = p
	e.Resort()
	return nil
}

// SetCurveType changes the curve type of the point at index.
func (e *Envelope) SetCurveType(index int, curve CurveType) error {
	p, ok := e.Points().PointAt(index)
	if !ok {
		return fmt.Errorf("%w: index %d of %d", ErrPointNotFound, index, e.Len())
	}
	p.Curve = curve
	return e.SetPoint(index, p)
}

// SetBezier changes the tangent handles of the point at index.
func (e *Envelope) SetBezier(index int, bezier Bezier) error {
	p, ok := e.Points().PointAt(index)
	if !ok {
		return fmt.Errorf("%w: index %d of %d", ErrPointNotFound, index, e.Len())
	}
	p.Bezier = bezier
	return e.SetPoint(index, p)
}

// RemovePoint deletes the point at index.
func (e *Envelope) RemovePoint(index int) error {
	if !e.store.valid(index) {
		return fmt.Errorf("%w: index %d of %d", ErrPointNotFound, index, e.Len())
	}
	e.store.points = append(e.store.points[:index], e.store.points[index+1:]...)
	e.Resort()
	return nil
}

// ReplacePoints discards all points and loads points with a single re-sort.
// Points with an unknown curve type are rejected before anything changes.
func (e *Envelope) ReplacePoints(points []Point) error {
	for i, p := range points {
		if !p.Curve.Valid() {
			return fmt.Errorf("%w: point %d has tag %d", ErrInvalidCurveType, i, int32(p.Curve))
		}
	}
	e.store.points = append(e.store.points[:0], points...)
	e.Resort()
	return nil
}

// ExportPoints returns a copy of the points in time order.
func (e *Envelope) ExportPoints() []Point {
	return append([]Point(nil), e.store.points...)
}

// Resort orders the points by time and recomputes the bounds of all
// channels. Mutating methods already do this; calling it again is a no-op
// apart from refreshing bounds after SetChannels.
func (e *Envelope) Resort() {
	e.store.resort(e.channels)
}

// FindTopBottom recomputes Bottom and Top over the channels selected by mask,
// where bit c selects channel c. Channels at or beyond Channels() are
// ignored. Bezier handle excursions are included.
//
// With no selected values the bounds are left at their sentinels and
// Bottom() > Top().
func (e *Envelope) FindTopBottom(mask uint) {
	e.store.findTopBottom(e.channels, mask)
}

// EndTime returns the time of the last point in seconds, or 0 without points.
func (e *Envelope) EndTime() float64 {
	return e.store.endTime()
}

// Eval evaluates the envelope at seconds and returns the channel count
// together with the sampled color. Seconds are rounded to the nearest
// nanosecond before sampling.
func (e *Envelope) Eval(seconds float64) (int, Color) {
	sampler := e.sampler
	if sampler == nil {
		sampler = SampleCurve
	}
	return e.channels, sampler(e.Points(), e.channels, SecondsToDuration(seconds))
}

func sanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, name)

	if len(name) <= MaxNameLength {
		return name
	}
	cut := MaxNameLength
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}
