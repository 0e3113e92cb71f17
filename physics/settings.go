package physics

import "math"

// Assert panics on a violated programming contract. It guards development
// mistakes such as an out-of-range child index, not recoverable runtime
// errors.
func Assert(a bool) {
	if !a {
		panic("physics: assertion failed")
	}
}

const MaxFloat = math.MaxFloat64
const Epsilon = math.SmallestNonzeroFloat64
const Pi = math.Pi

// Global tuning constants based on meters-kilograms-seconds (MKS) units.

// MaxPolygonVertices is the maximum number of vertices on a convex polygon.
const MaxPolygonVertices = 8

// LinearSlop is a small length used as a collision and constraint tolerance.
// Usually it is chosen to be numerically significant, but visually
// insignificant.
const LinearSlop = 0.005

// PolygonRadius is the default rounding radius of the polygon/edge shape
// skin. Making this smaller means polygons will have an insufficient buffer
// for continuous collision. Making it larger may create artifacts for vertex
// collision.
const PolygonRadius = 2.0 * LinearSlop

// radiusChangeTolerance is the relative tolerance under which a radius
// assignment is treated as a no-op.
const radiusChangeTolerance = 1e-5
