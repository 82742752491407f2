// Package geom holds the primitive 2D types shared by every stage of the
// triangulation pipeline: points, edges, and the tolerance record used by
// callers that need to pre-merge nearly-coincident input.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point represents a position in 2D Cartesian space.
//
// Coordinates use float64 precision. Point is immutable after construction;
// every pipeline stage treats the input point slice as read-only.
type Point struct {
	X float64
	Y float64
}

// R2 converts a Point to the r2.Point representation used by golang/geo,
// for interop with packages (hullcheck) that lift 2D geometry into
// golang/geo's r2/r3 vector types.
func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// FromR2 converts an r2.Point into a Point.
func FromR2(p r2.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// Edge is an ordered pair of vertex indices into a point slice.
type Edge struct {
	A, B int
}

// Canonical returns the edge with its smaller index first.
func (e Edge) Canonical() Edge {
	if e.A > e.B {
		return Edge{A: e.B, B: e.A}
	}
	return e
}

// Epsilon stores absolute and relative tolerances for geometric comparisons
// that sit outside the robust predicates (e.g. deciding whether two input
// points are "the same" before triangulation). The combined tolerance for a
// coordinate of magnitude |v| is Abs + Rel*|v|.
type Epsilon struct {
	Abs float64
	Rel float64
}

// DefaultEpsilon returns a conservative default tolerance.
func DefaultEpsilon() Epsilon {
	return Epsilon{Abs: 1e-9, Rel: 1e-12}
}

// Value computes the combined tolerance for the supplied coordinate magnitude.
func (e Epsilon) Value(mag float64) float64 {
	return math.Abs(e.Abs) + math.Abs(e.Rel)*mag
}

// TolForPoints computes the tolerance to use when comparing the given points,
// taking the maximum absolute coordinate magnitude across all of them.
func (e Epsilon) TolForPoints(points ...Point) float64 {
	maxMag := 0.0
	for _, p := range points {
		if m := math.Abs(p.X); m > maxMag {
			maxMag = m
		}
		if m := math.Abs(p.Y); m > maxMag {
			maxMag = m
		}
	}
	return e.Value(maxMag)
}
