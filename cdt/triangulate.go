// Package cdt is the public entry point of the constrained Delaunay
// triangulation engine: it wires the sweep-line monotone triangulator
// (sweep), the vertex-star triangulation structure (star), and the
// flip-based Delaunay refiner plus interior/exterior classifier (refine)
// into a single Triangulate(points, edges, options) operation.
package cdt

import (
	"fmt"
	"sort"

	"github.com/cdt2d/cdt2d/geom"
	"github.com/cdt2d/cdt2d/refine"
	"github.com/cdt2d/cdt2d/star"
	"github.com/cdt2d/cdt2d/sweep"
)

// Triangulate builds a constrained Delaunay triangulation of points,
// respecting the constraint edges, and returns the triangles selected by
// opts. Each returned triangle is a triple of indices into points, clockwise
// wound, except the pseudo-triangles Options.Infinity appends, whose third
// index is the sentinel -1.
//
// Triangulate returns an empty, nil-error result when points is empty or
// when both Options.Interior and Options.Exterior are false. It returns
// ErrInvalidVertexIndex if an edge references an out-of-range point index,
// and ErrVerticalConstraint if Options.RejectVertical is set and a
// constraint edge has equal-x endpoints (by default such edges are instead
// silently dropped).
func Triangulate(points []geom.Point, edges [][2]int, opts Options) ([][3]int, error) {
	if len(points) == 0 {
		return nil, nil
	}
	if !opts.Interior && !opts.Exterior {
		return nil, nil
	}

	for _, e := range edges {
		if e[0] < 0 || e[0] >= len(points) || e[1] < 0 || e[1] >= len(points) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidVertexIndex, e)
		}
	}

	constraints, err := canonicalConstraints(points, edges, opts.RejectVertical)
	if err != nil {
		return nil, err
	}

	cells := sweep.Triangulate(points, edges)

	soup := star.New(len(points), constraints)
	for _, c := range cells {
		soup.AddTriangle(c[0], c[1], c[2])
	}

	if opts.Delaunay {
		refine.Delaunay(soup, points)
	}

	label, includeInfinity := selectLabel(opts)
	return refine.Classify(soup, label, includeInfinity), nil
}

// selectLabel translates the four boolean Options into the single
// refine.Label plus includeInfinity pair refine.Classify expects.
// Options.Infinity only ever takes effect when Exterior triangles are part
// of the result.
func selectLabel(opts Options) (refine.Label, bool) {
	switch {
	case opts.Interior && opts.Exterior:
		return refine.All, opts.Infinity
	case opts.Interior:
		return refine.Interior, false
	default:
		return refine.Exterior, opts.Infinity
	}
}

// canonicalConstraints builds the sorted, deduplicated canonical constraint
// edge list star.New requires, dropping (or rejecting, per reject) vertical
// edges the same way sweep.Triangulate does.
func canonicalConstraints(points []geom.Point, edges [][2]int, reject bool) ([]star.Edge, error) {
	out := make([]star.Edge, 0, len(edges))
	for _, e := range edges {
		a, b := e[0], e[1]
		if points[a].X == points[b].X {
			if reject {
				return nil, fmt.Errorf("%w: %v", ErrVerticalConstraint, e)
			}
			continue
		}
		if a > b {
			a, b = b, a
		}
		out = append(out, star.Edge{A: a, B: b})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out, nil
}
