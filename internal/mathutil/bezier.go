package mathutil

import "math"

// Bezier evaluates the one-dimensional cubic bezier through p0..p3 at t.
func Bezier(p0, p1, p2, p3, t float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}

// SolveBezier returns the curve parameter at which the cubic bezier with
// control abscissae p0..p3 reaches x.
//
// The curve is expected to be monotonic in x (control points clamped into
// [p0, p3]), so at most one root lies in [0, 1]. The cubic is reduced to its
// depressed form and solved with Cardano's method; degenerate quadratic and
// linear cases are handled separately. The result is not clamped.
func SolveBezier(x, p0, p1, p2, p3 float64) float64 {
	x3 := -p0 + 3*p1 - 3*p2 + p3
	x2 := 3*p0 - 6*p1 + 3*p2
	x1 := -3*p0 + 3*p1
	x0 := p0 - x

	switch {
	case x3 == 0 && x2 == 0:
		// a*t + b = 0
		if x1 == 0 {
			return 0
		}
		return -x0 / x1

	case x3 == 0:
		// t*t + b*t + c = 0
		b := x1 / x2
		c := x0 / x2
		if c == 0 {
			return 0
		}
		sqrtD := math.Sqrt(b*b - 4*c)
		t := (-b + sqrtD) / 2
		if inUnitRange(t) {
			return t
		}
		return (-b - sqrtD) / 2
	}

	// t^3 + a*t^2 + b*t + c = 0, substituted with t = y - a/3
	a := x2 / x3
	b := x1 / x3
	c := x0 / x3
	sub := a / 3

	p := b/3 - a*a/9
	q := (2*a*a*a/27 - a*b/3 + c) / 2
	d := q*q + p*p*p

	switch {
	case d > 0:
		s := math.Sqrt(d)
		return math.Cbrt(s-q) - math.Cbrt(s+q) - sub

	case d == 0:
		s := math.Cbrt(-q)
		t := 2*s - sub
		if inUnitRange(t) {
			return t
		}
		return -s - sub
	}

	// three real roots
	phi := math.Acos(-q/math.Sqrt(-(p*p*p))) / 3
	s := 2 * math.Sqrt(-p)

	t1 := s*math.Cos(phi) - sub
	if inUnitRange(t1) {
		return t1
	}
	t2 := -s*math.Cos(phi+math.Pi/3) - sub
	if inUnitRange(t2) {
		return t2
	}
	return -s*math.Cos(phi-math.Pi/3) - sub
}

func inUnitRange(t float64) bool {
	return t >= 0 && t <= 1+rootTolerance
}
