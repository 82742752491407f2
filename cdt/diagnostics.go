package cdt

import (
	"github.com/cdt2d/cdt2d/geom"
	"github.com/cdt2d/cdt2d/robust"
	"github.com/cdt2d/cdt2d/star"
)

// Diagnostics summarizes a triangulation for introspection and testing:
// counts plus two global properties worth checking after a build, local
// Delaunay-ness and constraint preservation.
type Diagnostics struct {
	VertexCount     int
	TriangleCount   int
	ConstraintCount int

	// IsDelaunay is true iff every non-constraint edge shared by two cells
	// satisfies InCircle(a,b,c,d) >= 0.
	IsDelaunay bool

	// ConstraintsRespected is true iff every non-vertical input constraint
	// edge appears as an edge of some cell.
	ConstraintsRespected bool
}

// Diagnose recomputes Diagnostics from a finished triangulation (the cells
// Triangulate returned, run with Interior and Exterior both true and
// Infinity false so every finite triangle is present) plus the original
// points and edges. It does not mutate cells.
func Diagnose(points []geom.Point, edges [][2]int, cells [][3]int) Diagnostics {
	constraints, _ := canonicalConstraints(points, edges, false)

	soup := star.New(len(points), constraints)
	for _, c := range cells {
		soup.AddTriangle(c[0], c[1], c[2])
	}

	d := Diagnostics{
		VertexCount:     len(points),
		TriangleCount:   len(cells),
		ConstraintCount: len(constraints),
	}

	d.IsDelaunay = checkDelaunay(soup, points)
	d.ConstraintsRespected = checkConstraints(soup, constraints)
	return d
}

func checkDelaunay(soup *star.Soup, points []geom.Point) bool {
	for a := 0; a < soup.NumVertices(); a++ {
		arr := soup.Star(a)
		for i := 0; i+1 < len(arr); i += 2 {
			x, b := arr[i], arr[i+1]
			if b <= a || soup.IsConstraint(a, b) {
				continue
			}
			y := soup.Opposite(a, b)
			if y == star.NilVertex {
				continue
			}
			pa, pb, px, py := points[a], points[b], points[x], points[y]
			if robust.Orientation(pa, pb, px) > 0 {
				if robust.InCircle(pa, pb, px, py) > 0 {
					return false
				}
			} else if robust.InCircle(pb, pa, px, py) > 0 {
				return false
			}
		}
	}
	return true
}

func checkConstraints(soup *star.Soup, constraints []star.Edge) bool {
	for _, e := range constraints {
		if !edgeInStar(soup.Star(e.A), e.B) {
			return false
		}
	}
	return true
}

// edgeInStar reports whether vertex b appears in any pair of the given star,
// i.e. whether some triangle incident to the star's owning vertex also has b
// as a vertex (and therefore the edge between them as one of its sides).
func edgeInStar(arr []int, b int) bool {
	for i := 0; i+1 < len(arr); i += 2 {
		if arr[i] == b || arr[i+1] == b {
			return true
		}
	}
	return false
}
