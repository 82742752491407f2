package cdt

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/cdt2d/cdt2d/geom"
	"github.com/cdt2d/cdt2d/hullcheck"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

// normalize canonicalizes a cell list for order-insensitive comparison:
// rotate each triangle so its smallest index comes first, then sort the
// list. It deliberately does not re-derive winding, since winding is part
// of what the tests are checking.
func normalize(cells [][3]int) [][3]int {
	out := make([][3]int, len(cells))
	for i, c := range cells {
		out[i] = rotateSmallestFirst(c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return out
}

func rotateSmallestFirst(c [3]int) [3]int {
	switch {
	case c[0] <= c[1] && c[0] <= c[2]:
		return c
	case c[1] <= c[0] && c[1] <= c[2]:
		return [3]int{c[1], c[2], c[0]}
	default:
		return [3]int{c[2], c[0], c[1]}
	}
}

// E1: three non-collinear points, no edges -> one triangle.
func TestTriangulate_E1_SingleTriangle(t *testing.T) {
	points := []geom.Point{pt(0, 0), pt(1, 0), pt(0, 1)}
	cells, err := Triangulate(points, nil, DefaultOptions())
	assert.NoError(t, err)
	assert.Len(t, cells, 1)

	seen := map[int]bool{}
	for _, v := range cells[0] {
		seen[v] = true
	}
	assert.Len(t, seen, 3, "triangle must have three distinct indices")
}

// E2: unit square, no edges -> two triangles tiling the square.
func TestTriangulate_E2_UnitSquare(t *testing.T) {
	points := []geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	cells, err := Triangulate(points, nil, DefaultOptions())
	assert.NoError(t, err)
	assert.Len(t, cells, 2)
	assertPartitionsHull(t, points, cells)
}

// E3: unit square with the opposite diagonal pinned as a constraint;
// refinement must not flip it away even though either diagonal is equally
// Delaunay for a co-circular square.
func TestTriangulate_E3_ConstrainedDiagonalSurvives(t *testing.T) {
	points := []geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	edges := [][2]int{{0, 2}}
	cells, err := Triangulate(points, edges, DefaultOptions())
	assert.NoError(t, err)
	assert.Len(t, cells, 2)

	for _, c := range cells {
		assert.True(t, containsEdge(c, 0, 2), "diagonal (0,2) must survive refinement in %v", c)
	}
}

// E4: unit square with its own perimeter as constraints, interior only.
func TestTriangulate_E4_InteriorOnly(t *testing.T) {
	points := []geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	opts := DefaultOptions()
	opts.Exterior = false

	cells, err := Triangulate(points, edges, opts)
	assert.NoError(t, err)
	assert.Len(t, cells, 2)
	assertPartitionsHull(t, points, cells)
}

// E5: same square, exterior-only with infinite pseudo-triangles requested:
// no finite triangles, four pseudo-triangles carrying the sentinel vertex.
func TestTriangulate_E5_ExteriorInfinity(t *testing.T) {
	points := []geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	opts := Options{Delaunay: true, Interior: false, Exterior: true, Infinity: true}

	cells, err := Triangulate(points, edges, opts)
	assert.NoError(t, err)
	assert.Len(t, cells, 4)
	for _, c := range cells {
		assert.Equal(t, -1, c[2], "pseudo-triangle must carry the -1 sentinel: %v", c)
	}
}

// E6: hexagon plus center, no edges -> six triangles fanning from the
// center. The monotone output here is not Delaunay (it joins the two
// left-hand rim points (3,5) directly), so refinement flips edges; it must
// keep the triangle count and leave a Delaunay result.
func TestTriangulate_E6_HexagonFan(t *testing.T) {
	points := make([]geom.Point, 0, 7)
	points = append(points, pt(0, 0))
	for i := 0; i < 6; i++ {
		angle := float64(i) * math.Pi / 3
		points = append(points, pt(math.Cos(angle), math.Sin(angle)))
	}

	cells, err := Triangulate(points, nil, DefaultOptions())
	assert.NoError(t, err)
	assert.Len(t, cells, 6)

	diagNoRefine := Diagnose(points, nil, mustTriangulate(t, points, nil, noRefineOptions()))
	diagRefine := Diagnose(points, nil, cells)
	assert.True(t, diagRefine.IsDelaunay)
	assert.Equal(t, diagNoRefine.TriangleCount, diagRefine.TriangleCount,
		"refinement must not change the triangle count, only (possibly) the diagonals")
}

func noRefineOptions() Options {
	o := DefaultOptions()
	o.Delaunay = false
	return o
}

func mustTriangulate(t *testing.T, points []geom.Point, edges [][2]int, opts Options) [][3]int {
	t.Helper()
	cells, err := Triangulate(points, edges, opts)
	assert.NoError(t, err)
	return cells
}

// Boundary: empty point list -> empty output, no error.
func TestTriangulate_EmptyInput(t *testing.T) {
	cells, err := Triangulate(nil, nil, DefaultOptions())
	assert.NoError(t, err)
	assert.Empty(t, cells)
}

// Boundary: neither interior nor exterior requested -> empty output.
func TestTriangulate_NeitherSideRequested(t *testing.T) {
	points := []geom.Point{pt(0, 0), pt(1, 0), pt(0, 1)}
	opts := Options{Delaunay: true}
	cells, err := Triangulate(points, nil, opts)
	assert.NoError(t, err)
	assert.Empty(t, cells)
}

func TestTriangulate_InvalidVertexIndex(t *testing.T) {
	points := []geom.Point{pt(0, 0), pt(1, 0), pt(0, 1)}
	_, err := Triangulate(points, [][2]int{{0, 5}}, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidVertexIndex)
}

func TestTriangulate_VerticalConstraint(t *testing.T) {
	points := []geom.Point{pt(0, 0), pt(0, 1), pt(1, 0.5)}
	defaultOpts := DefaultOptions()

	cells, err := Triangulate(points, [][2]int{{0, 1}}, defaultOpts)
	assert.NoError(t, err, "vertical constraints are silently dropped by default")
	assert.NotEmpty(t, cells)

	rejectOpts := defaultOpts
	rejectOpts.RejectVertical = true
	_, err = Triangulate(points, [][2]int{{0, 1}}, rejectOpts)
	assert.ErrorIs(t, err, ErrVerticalConstraint)
}

// Property: triangulating the same input twice produces the identical
// (order-insensitive) cell set.
func TestTriangulate_DeterministicOnRepeatedInput(t *testing.T) {
	points := []geom.Point{pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2), pt(1, 1)}

	once, err := Triangulate(points, nil, DefaultOptions())
	assert.NoError(t, err)

	twice, err := Triangulate(points, nil, DefaultOptions())
	assert.NoError(t, err)

	if diff := cmp.Diff(normalize(once), normalize(twice), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("re-running Triangulate on the same Delaunay input changed topology (-first +second):\n%s", diff)
	}
}

func containsEdge(c [3]int, a, b int) bool {
	for i := 0; i < 3; i++ {
		u, v := c[i], c[(i+1)%3]
		if (u == a && v == b) || (u == b && v == a) {
			return true
		}
	}
	return false
}

// assertPartitionsHull checks that the returned triangles partition the
// convex hull, by comparing the sum of triangle areas against the hull's
// area as independently computed by hullcheck.
func assertPartitionsHull(t *testing.T, points []geom.Point, cells [][3]int) {
	t.Helper()
	var sum float64
	for _, c := range cells {
		sum += triangleArea(points[c[0]], points[c[1]], points[c[2]])
	}
	assert.InDelta(t, hullAreaOf(t, points), sum, 1e-9)
}

func triangleArea(a, b, c geom.Point) float64 {
	return 0.5 * math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y))
}

func hullAreaOf(t *testing.T, points []geom.Point) float64 {
	t.Helper()
	area, err := hullcheck.Area(points)
	assert.NoError(t, err)
	return area
}
