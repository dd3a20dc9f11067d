// Package simdops provides SIMD-accelerated slice operations for float32 and
// float64 vertex buffers, used when turning sampled envelope curves into
// render-ready polylines.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []F)

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		Interleave2: f32.Interleave2,
		Scale:       f32.Scale,
	}
	ops64 = Ops[float64]{
		Interleave2: f64.Interleave2,
		Scale:       f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Vertices builds an interleaved x,y vertex buffer from xs and ys, scaling
// every x by xScale. Only the first min(len(xs), len(ys)) pairs are used.
func Vertices[F Float](xs, ys []F, xScale F) []F {
	n := min(len(xs), len(ys))
	if n == 0 {
		return nil
	}
	ops := For[F]()

	scaled := make([]F, n)
	ops.Scale(scaled, xs[:n], xScale)

	out := make([]F, n*vertexComponents)
	ops.Interleave2(out, scaled, ys[:n])
	return out
}
