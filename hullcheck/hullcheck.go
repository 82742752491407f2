// Package hullcheck independently recomputes the convex hull of a 2D point
// set via github.com/markus-wa/quickhull-go/v2, lifting points into
// golang/geo's r3 vectors before handing them to QuickHull. It exists to
// cross-check the triangulation engine's output (whether its triangles
// partition the convex hull of the input points with no gaps or overlaps)
// against a second, unrelated hull algorithm, rather than to serve as a
// hull implementation in its own right.
package hullcheck

import (
	"errors"
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/cdt2d/cdt2d/geom"
)

// ErrTooFewPoints is returned when fewer than 3 points are supplied; a hull
// area is not defined below that.
var ErrTooFewPoints = errors.New("hullcheck: need at least 3 points")

// defaultEps mirrors the epsilon s2delaunay.WithEps defaults to.
const defaultEps = 1e-12

// Area returns the area of the convex hull of points, computed by lifting
// each 2D point onto the z=0 plane as an r3.Vector, recovering the boundary
// vertex set from quickhull-go's face indices, and shoelacing the resulting
// polygon (sorted angularly around its centroid, since QuickHull's index
// order is not guaranteed to be a simple polygon walk for a planar point
// cloud).
func Area(points []geom.Point) (float64, error) {
	verts, err := HullVertices(points)
	if err != nil {
		return 0, err
	}
	return polygonArea(points, verts), nil
}

// HullVertices returns the indices (into points) of the points lying on the
// convex hull boundary, in counter-clockwise angular order around the hull's
// centroid.
func HullVertices(points []geom.Point) ([]int, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}

	lifted := make([]r3.Vector, len(points))
	for i, p := range points {
		flat := p.R2()
		lifted[i] = r3.Vector{X: flat.X, Y: flat.Y, Z: 0}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, defaultEps)

	seen := make(map[int]bool, len(ch.Indices))
	var verts []int
	for _, idx := range ch.Indices {
		if !seen[idx] {
			seen[idx] = true
			verts = append(verts, idx)
		}
	}

	cx, cy := centroid(points, verts)
	sort.Slice(verts, func(i, j int) bool {
		ai := math.Atan2(points[verts[i]].Y-cy, points[verts[i]].X-cx)
		aj := math.Atan2(points[verts[j]].Y-cy, points[verts[j]].X-cx)
		return ai < aj
	})
	return verts, nil
}

func centroid(points []geom.Point, idx []int) (x, y float64) {
	for _, i := range idx {
		x += points[i].X
		y += points[i].Y
	}
	n := float64(len(idx))
	return x / n, y / n
}

// polygonArea shoelaces the polygon formed by points[idx[0]], points[idx[1]], ...
func polygonArea(points []geom.Point, idx []int) float64 {
	var sum float64
	n := len(idx)
	for i := 0; i < n; i++ {
		a := points[idx[i]]
		b := points[idx[(i+1)%n]]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}
