// Package svgrender draws a triangulation to SVG via
// github.com/ajstarks/svgo, the way 2dChan/s2voronoi's
// examples/s2delaunay main renders a Triangulation's faces. It exists for
// debugging and the cmd/render_svg example binary; the core engine
// (cdt/sweep/refine/star) never imports it.
package svgrender

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/cdt2d/cdt2d/geom"
)

const (
	interiorStyle   = "fill:rgb(210,230,255);stroke:rgb(60,60,60);stroke-width:1"
	exteriorStyle   = "fill:rgb(255,230,210);stroke:rgb(60,60,60);stroke-width:1"
	constraintStyle = "stroke:rgb(200,0,0);stroke-width:2"
	pointStyle      = "fill:rgb(0,0,0)"
)

// Options configures the rendered canvas: output pixel dimensions and the
// margin added around the point set's bounding box before it is scaled to
// fill the canvas, as a fraction of the box's width and height.
type Options struct {
	Width, Height int
	Margin        float64
}

// DefaultOptions returns a reasonably sized canvas with a 10% margin.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, Margin: 0.1}
}

// Render writes an SVG document to w depicting points, the triangles in
// cells (pseudo-triangles carrying the -1 sentinel are skipped, since they
// have no finite geometry to draw), and the constraint edges in edges drawn
// on top in a distinguishing color. interior selects which fill style is
// used for an index in cells — pass nil to draw every cell with
// interiorStyle.
func Render(w io.Writer, points []geom.Point, cells [][3]int, edges [][2]int, interior []bool, opts Options) {
	proj := newProjector(points, opts)

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:rgb(255,255,255)")

	for i, c := range cells {
		if c[2] == -1 {
			continue // pseudo-triangle: no finite geometry to draw
		}
		xs, ys := proj.triangle(points[c[0]], points[c[1]], points[c[2]])
		style := interiorStyle
		if interior != nil && i < len(interior) && !interior[i] {
			style = exteriorStyle
		}
		canvas.Polygon(xs, ys, style)
	}

	for _, e := range edges {
		x1, y1 := proj.point(points[e[0]])
		x2, y2 := proj.point(points[e[1]])
		canvas.Line(x1, y1, x2, y2, constraintStyle)
	}

	for _, p := range points {
		x, y := proj.point(p)
		canvas.Circle(x, y, 3, pointStyle)
	}

	canvas.End()
}

// projector maps source-space points into canvas pixel coordinates.
type projector struct {
	minX, minY float64
	scale      float64
	height     int
}

func newProjector(points []geom.Point, opts Options) projector {
	if len(points) == 0 {
		return projector{scale: 1, height: opts.Height}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	w, h := maxX-minX, maxY-minY
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	margin := opts.Margin
	minX -= w * margin
	minY -= h * margin
	span := max(w, h) * (1 + 2*margin)

	scale := float64(opts.Width) / span
	if float64(opts.Height)/span < scale {
		scale = float64(opts.Height) / span
	}
	return projector{minX: minX, minY: minY, scale: scale, height: opts.Height}
}

func (p projector) point(pt geom.Point) (int, int) {
	x := (pt.X - p.minX) * p.scale
	y := float64(p.height) - (pt.Y-p.minY)*p.scale
	return int(x), int(y)
}

func (p projector) triangle(a, b, c geom.Point) ([]int, []int) {
	xs := make([]int, 3)
	ys := make([]int, 3)
	xs[0], ys[0] = p.point(a)
	xs[1], ys[1] = p.point(b)
	xs[2], ys[2] = p.point(c)
	return xs, ys
}
