// Package sweep implements the monotone triangulator: a left-to-right
// sweep over point and constraint-edge events that produces an initial
// triangulation containing every (non-vertical) constraint edge. Its
// output feeds the Delaunay refinement stage; it does not itself guarantee
// the Delaunay property.
package sweep

import (
	"sort"

	"github.com/cdt2d/cdt2d/bsearch"
	"github.com/cdt2d/cdt2d/geom"
	"github.com/cdt2d/cdt2d/robust"
)

const nilVertex = -1

type kind int

const (
	kindPoint kind = iota
	kindEnd
	kindStart
)

// event is a sweep event. For kindPoint, primary is the vertex and partner
// is unused (nilVertex). For kindStart/kindEnd, primary/partner are the two
// endpoints of a constraint edge: kindStart carries (left, right), kindEnd
// carries (right, left) so that, unswapped, events sort by the x-coordinate
// at which they should fire.
type event struct {
	kind    kind
	primary int
	partner int
	idx     int // originating index (vertex index, or input edge index)
}

// channel is a partial hull: a horizontal region of the sweep bounded above
// by a segment (from a to b, or sentinel values for the topmost channel),
// holding the lower and upper monotone chains of vertex indices
// triangulated so far within it.
type channel struct {
	a, b       geom.Point
	lowerIds   []int
	upperIds   []int
}

// Triangulate runs the sweep and returns the clockwise triangles of an
// initial, constraint-respecting (but not necessarily Delaunay)
// triangulation of points. edges is a list of constraint vertex-index
// pairs; vertical edges (equal x) are silently dropped.
func Triangulate(points []geom.Point, edges [][2]int) [][3]int {
	if len(points) == 0 {
		return nil
	}

	events := buildEvents(points, edges)
	if len(events) == 0 {
		return nil
	}

	sort.Slice(events, func(i, j int) bool {
		return compareEvents(points, events[i], events[j]) < 0
	})

	minX := points[events[0].primary].X
	minX = minX - (1+abs(minX))*2*1e-12

	hulls := []channel{{
		a: geom.Point{X: minX, Y: 1},
		b: geom.Point{X: minX, Y: 0},
	}}

	var cells [][3]int
	for _, ev := range events {
		switch ev.kind {
		case kindPoint:
			hulls = handlePoint(hulls, points, ev.primary, &cells)
		case kindStart:
			hulls = handleStart(hulls, points, ev)
		case kindEnd:
			hulls = handleEnd(hulls, points, ev)
		}
	}

	return cells
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func buildEvents(points []geom.Point, edges [][2]int) []event {
	events := make([]event, 0, len(points)+2*len(edges))
	for i := range points {
		events = append(events, event{kind: kindPoint, primary: i, partner: nilVertex, idx: i})
	}

	for ei, e := range edges {
		a, b := e[0], e[1]
		pa, pb := points[a], points[b]
		if pa.X == pb.X {
			continue // vertical constraint edge: silently dropped
		}
		l, r := a, b
		if lexLess(pb, pa) {
			l, r = b, a
		}
		events = append(events, event{kind: kindStart, primary: l, partner: r, idx: ei})
		events = append(events, event{kind: kindEnd, primary: r, partner: l, idx: ei})
	}
	return events
}

// lexLess reports whether b is lexicographically smaller than a (by x then
// y), i.e. whether the canonical "left" endpoint is b.
func lexLess(b, a geom.Point) bool {
	if b.X != a.X {
		return b.X < a.X
	}
	return b.Y < a.Y
}

// compareEvents implements a strict weak event order: by a.x, then a.y,
// then event kind (POINT < END < START), then — for two
// non-POINT events still tied — by the orientation of the shared point
// against the two events' partner points, then by originating index.
func compareEvents(points []geom.Point, e1, e2 event) int {
	p1, p2 := points[e1.primary], points[e2.primary]
	if p1.X != p2.X {
		return cmpFloat(p1.X, p2.X)
	}
	if p1.Y != p2.Y {
		return cmpFloat(p1.Y, p2.Y)
	}
	if e1.kind != e2.kind {
		return int(e1.kind) - int(e2.kind)
	}
	if e1.kind != kindPoint {
		o := robust.Orientation(p1, points[e1.partner], points[e2.partner])
		if o != 0 {
			return -o
		}
	}
	return e1.idx - e2.idx
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// hullVsPoint tests a point against a channel's bounding segment: positive
// means p lies to the left of the directed segment a->b, i.e. above a
// left-to-right constraint segment. For the sentinel, whose segment runs
// straight down at minX, every swept point gives a positive result.
func hullVsPoint(c channel, p geom.Point) int {
	return robust.Orientation(c.a, c.b, p)
}

func handlePoint(hulls []channel, points []geom.Point, idx int, cells *[][3]int) []channel {
	p := points[idx]

	n := len(hulls)
	lo := bsearch.Lt(n, func(i int) int { return -hullVsPoint(hulls[i], p) })
	hi := bsearch.Gt(n, func(i int) int { return -hullVsPoint(hulls[i], p) })
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}

	for i := lo; i < hi; i++ {
		c := &hulls[i]

		L := c.lowerIds
		for len(L) >= 2 && robust.Orientation(points[L[len(L)-2]], points[L[len(L)-1]], p) > 0 {
			*cells = append(*cells, [3]int{L[len(L)-1], L[len(L)-2], idx})
			L = L[:len(L)-1]
		}
		L = append(L, idx)
		c.lowerIds = L

		U := c.upperIds
		for len(U) >= 2 && robust.Orientation(points[U[len(U)-2]], points[U[len(U)-1]], p) < 0 {
			*cells = append(*cells, [3]int{U[len(U)-2], U[len(U)-1], idx})
			U = U[:len(U)-1]
		}
		U = append(U, idx)
		c.upperIds = U
	}

	return hulls
}

// findSplit locates the channel whose region contains the left endpoint of
// a constraint edge. A general four-orientation-test comparator would be
// needed to split an arbitrary new segment, but it collapses to exactly
// this single hullVsPoint test here, since the edge's left endpoint has
// already been swept in as an ordinary vertex and therefore already
// determines which channel it falls in. Used identically (with a/b swapped
// for END so it matches the original START) by both insertion and removal
// so the same channel is found both times.
func findSplit(hulls []channel, leftPoint geom.Point) bsearch.Cmp {
	return func(i int) int { return -hullVsPoint(hulls[i], leftPoint) }
}

func handleStart(hulls []channel, points []geom.Point, ev event) []channel {
	left := points[ev.primary]
	right := points[ev.partner]

	k := bsearch.Le(len(hulls), findSplit(hulls, left))
	if k == bsearch.NotFound {
		return hulls
	}

	oldUpper := hulls[k].upperIds
	x := oldUpper[len(oldUpper)-1]
	hulls[k].upperIds = []int{x}

	newHull := channel{
		a:        left,
		b:        right,
		lowerIds: []int{x},
		upperIds: append([]int(nil), oldUpper...),
	}

	out := make([]channel, 0, len(hulls)+1)
	out = append(out, hulls[:k+1]...)
	out = append(out, newHull)
	out = append(out, hulls[k+1:]...)
	return out
}

func handleEnd(hulls []channel, points []geom.Point, ev event) []channel {
	// ev carries (right, left); swap back to (left, right) to match the
	// comparator used by the original START.
	left := points[ev.partner]

	k := bsearch.Eq(len(hulls), findSplit(hulls, left))
	if k == bsearch.NotFound || k <= 0 {
		return hulls
	}

	hulls[k-1].upperIds = hulls[k].upperIds

	out := make([]channel, 0, len(hulls)-1)
	out = append(out, hulls[:k]...)
	out = append(out, hulls[k+1:]...)
	return out
}
