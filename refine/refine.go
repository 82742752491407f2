// Package refine turns the monotone triangulator's initial triangulation
// into a Delaunay one via a stack-driven edge-flip loop guarded by the
// robust in-circle predicate, and classifies the resulting triangles as
// interior or exterior by flood-filling across non-constrained edges,
// alternating sign each time a constraint edge is crossed.
package refine

import (
	"github.com/cdt2d/cdt2d/geom"
	"github.com/cdt2d/cdt2d/robust"
	"github.com/cdt2d/cdt2d/star"
)

// Delaunay repeatedly flips non-constrained edges that fail the empty
// circumcircle test until none remain. It mutates soup in place.
func Delaunay(soup *star.Soup, points []geom.Point) {
	stack := initialStack(soup, points)

	for len(stack) > 0 {
		n := len(stack)
		a, b := stack[n-1], stack[n-2]
		stack = stack[:n-2]

		x := soup.Opposite(b, a) // apex of triangle (a,b,x)
		y := soup.Opposite(a, b) // apex of triangle (b,a,y)
		if x == star.NilVertex || y == star.NilVertex {
			continue
		}
		if !illegal(points, a, b, x, y) {
			continue // a prior flip already fixed this edge
		}

		soup.Flip(a, b)

		pushIfIllegal(&stack, soup, points, x, a) // edge (x,a), known opposite y
		pushIfIllegal(&stack, soup, points, a, y) // edge (a,y), known opposite x
		pushIfIllegal(&stack, soup, points, y, b) // edge (y,b), known opposite x
		pushIfIllegal(&stack, soup, points, b, x) // edge (b,x), known opposite y
	}
}

// illegal reports whether edge (a,b), shared by triangles (a,b,x) and
// (b,a,y), violates the Delaunay property: d = y lies strictly inside the
// circumcircle of (a,b,x) once that triangle is oriented CCW.
func illegal(points []geom.Point, a, b, x, y int) bool {
	pa, pb, px, py := points[a], points[b], points[x], points[y]
	if robust.Orientation(pa, pb, px) > 0 {
		return robust.InCircle(pa, pb, px, py) > 0
	}
	return robust.InCircle(pb, pa, px, py) > 0
}

// pushIfIllegal canonicalizes edge (u,v) (smaller index first), skips
// constraint edges, and pushes the edge onto the flip stack if it fails the
// Delaunay test. The two apexes flanking the edge are looked up fresh from
// soup rather than threaded through by the caller, since soup already
// reflects the flip that produced this edge.
func pushIfIllegal(stack *[]int, soup *star.Soup, points []geom.Point, u, v int) {
	a, b := u, v
	if a > b {
		a, b = b, a
	}
	if soup.IsConstraint(a, b) {
		return
	}

	x := soup.Opposite(b, a)
	y := soup.Opposite(a, b)
	if x == star.NilVertex || y == star.NilVertex {
		return
	}
	if illegal(points, a, b, x, y) {
		*stack = append(*stack, a, b)
	}
}

// initialStack populates the flip stack: for every non-constrained edge
// (a,b) with a < b that has an opposite vertex on both sides and fails the
// Delaunay test, push it once.
func initialStack(soup *star.Soup, points []geom.Point) []int {
	var stack []int
	for a := 0; a < soup.NumVertices(); a++ {
		arr := soup.Star(a)
		for i := 0; i+1 < len(arr); i += 2 {
			x, b := arr[i], arr[i+1]
			if b <= a {
				continue // visit each undirected edge once
			}
			if soup.IsConstraint(a, b) {
				continue
			}
			y := soup.Opposite(a, b)
			if y == star.NilVertex {
				continue
			}
			if illegal(points, a, b, x, y) {
				stack = append(stack, a, b)
			}
		}
	}
	return stack
}
