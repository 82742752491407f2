package refine

import (
	"sort"

	"github.com/cdt2d/cdt2d/bsearch"
	"github.com/cdt2d/cdt2d/star"
)

// Label selects which side of the classified triangulation Classify
// returns.
type Label int

const (
	Interior Label = -1
	All      Label = 0
	Exterior Label = 1
)

// Classify labels every cell of a refined triangulation interior or
// exterior by flood-filling across non-constrained edges and flipping the
// current side each time a constraint edge is crossed, then returns the
// cells selected by label (All returns every cell, labeled or not). When
// includeInfinity is set, the infinite triangles bordering the convex hull
// -- (p2,p1,-1) for each boundary edge (p1,p2) -- are appended wherever the
// result includes the exterior side.
func Classify(soup *star.Soup, label Label, includeInfinity bool) [][3]int {
	cells := rotatedSortedCells(soup)
	m := len(cells)
	if m == 0 {
		return nil
	}

	neighbor := make([]int, 3*m)
	constraint := make([]bool, 3*m)
	for i, c := range cells {
		for j := 0; j < 3; j++ {
			p1, p2 := c[j], c[(j+1)%3]
			idx := bsearch.NotFound
			if v := soup.Opposite(p2, p1); v != star.NilVertex {
				idx = findCell(cells, p2, p1, v)
			}
			neighbor[3*i+j] = idx
			constraint[3*i+j] = soup.IsConstraint(p1, p2)
		}
	}

	flags := make([]int, m)
	var sameSide, crossConstraint []int
	var boundary [][3]int

	for i, c := range cells {
		for j := 0; j < 3; j++ {
			if neighbor[3*i+j] != bsearch.NotFound {
				continue
			}
			if constraint[3*i+j] {
				crossConstraint = append(crossConstraint, i)
			} else {
				sameSide = append(sameSide, i)
				flags[i] = 1
			}
			if includeInfinity {
				p1, p2 := c[j], c[(j+1)%3]
				boundary = append(boundary, [3]int{p2, p1, -1})
			}
		}
	}

	s := 1
	for len(sameSide) > 0 || len(crossConstraint) > 0 {
		for len(sameSide) > 0 {
			t := sameSide[0]
			sameSide = sameSide[1:]
			if flags[t] == -s {
				continue // already labeled on the other side
			}
			flags[t] = s

			for j := 0; j < 3; j++ {
				f := neighbor[3*t+j]
				if f == bsearch.NotFound || flags[f] != 0 {
					continue
				}
				if constraint[3*t+j] {
					crossConstraint = append(crossConstraint, f)
				} else {
					flags[f] = s
					sameSide = append(sameSide, f)
				}
			}
		}
		sameSide, crossConstraint = crossConstraint, nil
		s = -s
	}

	if label == All {
		out := append([][3]int(nil), cells...)
		if includeInfinity {
			out = append(out, boundary...)
		}
		return out
	}

	var out [][3]int
	for i, c := range cells {
		if flags[i] == int(label) {
			out = append(out, c)
		}
	}
	if includeInfinity && label == Exterior {
		out = append(out, boundary...)
	}
	return out
}

// rotateCell rotates (a,b,c) so its smallest index comes first, preserving
// cyclic order.
func rotateCell(a, b, c int) [3]int {
	switch {
	case a <= b && a <= c:
		return [3]int{a, b, c}
	case b <= a && b <= c:
		return [3]int{b, c, a}
	default:
		return [3]int{c, a, b}
	}
}

func rotatedSortedCells(soup *star.Soup) [][3]int {
	raw := soup.Cells()
	cells := make([][3]int, len(raw))
	for i, c := range raw {
		cells[i] = rotateCell(c[0], c[1], c[2])
	}
	sort.Slice(cells, func(i, j int) bool { return lessTriple(cells[i], cells[j]) })
	return cells
}

func lessTriple(a, b [3]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[2] < b[2]
}

// findCell locates cell (p1,p2,v), rotated to canonical form, within the
// rotated, lexicographically sorted cells slice, or bsearch.NotFound if
// absent.
func findCell(cells [][3]int, p1, p2, v int) int {
	target := rotateCell(p1, p2, v)
	return bsearch.Eq(len(cells), func(i int) int {
		c := cells[i]
		switch {
		case c[0] != target[0]:
			return c[0] - target[0]
		case c[1] != target[1]:
			return c[1] - target[1]
		default:
			return c[2] - target[2]
		}
	})
}
