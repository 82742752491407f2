// Package star implements the vertex-keyed adjacency structure ("stars")
// that backs the triangulation: for each vertex v, a flat sequence of
// integer pairs [p1,q1,p2,q2,...] where pair (p,q) encodes the clockwise
// triangle (v,p,q) incident to v. The encoding trades O(1) DCEL-style
// navigation for O(deg v) linear search over a vertex's pairs, in exchange
// for removing every ownership/reference-cycle question: the structure is
// nothing but one flat integer slice per vertex.
package star

import "github.com/cdt2d/cdt2d/bsearch"

// NilVertex is the sentinel meaning "no vertex" (a boundary / missing
// opposite).
const NilVertex = -1

// Edge is a canonical (smaller index first) constraint edge.
type Edge struct {
	A, B int
}

// Soup is the triangulation structure: n vertex stars plus the sorted
// constraint edge set.
type Soup struct {
	stars       [][]int // stars[v] is a flat [p1,q1,p2,q2,...] list
	constraints []Edge  // sorted canonical edges
}

// New constructs an empty triangulation structure over n vertices. edges
// must already be sorted in canonical (A,B) lexicographic order; duplicates
// are tolerated (IsConstraint is a membership test, not a count).
func New(n int, edges []Edge) *Soup {
	return &Soup{
		stars:       make([][]int, n),
		constraints: edges,
	}
}

// AddTriangle records the clockwise triangle (i,j,k). The caller guarantees
// clockwise winding; AddTriangle does not validate it.
func (s *Soup) AddTriangle(i, j, k int) {
	s.stars[i] = append(s.stars[i], j, k)
	s.stars[j] = append(s.stars[j], k, i)
	s.stars[k] = append(s.stars[k], i, j)
}

// RemoveTriangle removes the clockwise triangle (i,j,k), which must have
// been added previously (in any rotation). Removal is rotation-invariant:
// it always removes pair (j,k) from star i, (k,i) from star j, (i,j) from
// star k, regardless of which rotation of the triangle the caller names.
// If the triangle is not present, RemoveTriangle is a silent no-op.
func (s *Soup) RemoveTriangle(i, j, k int) {
	removePair(&s.stars[i], j, k)
	removePair(&s.stars[j], k, i)
	removePair(&s.stars[k], i, j)
}

// removePair deletes the first occurrence of pair (p, q) from a star using
// swap-with-last-and-pop.
func removePair(star *[]int, p, q int) {
	arr := *star
	for idx := 0; idx+1 < len(arr); idx += 2 {
		if arr[idx] == p && arr[idx+1] == q {
			last := len(arr) - 2
			arr[idx], arr[idx+1] = arr[last], arr[last+1]
			*star = arr[:last]
			return
		}
	}
}

// Opposite finds the vertex opposite the directed edge (j -> i): it
// searches the star of i for a pair whose second element is j and returns
// that pair's first element, or NilVertex if no such pair exists.
func (s *Soup) Opposite(j, i int) int {
	arr := s.stars[i]
	for idx := 0; idx+1 < len(arr); idx += 2 {
		if arr[idx+1] == j {
			return arr[idx]
		}
	}
	return NilVertex
}

// IsConstraint reports whether (i,j) is a constraint edge.
func (s *Soup) IsConstraint(i, j int) bool {
	a, b := i, j
	if a > b {
		a, b = b, a
	}
	n := len(s.constraints)
	idx := bsearch.Eq(n, func(k int) int {
		e := s.constraints[k]
		switch {
		case e.A != a:
			return e.A - a
		default:
			return e.B - b
		}
	})
	return idx != bsearch.NotFound
}

// Flip performs an edge flip on edge (i,j). Precondition: (i,j) is shared
// by triangles (i,j,a) and (j,i,b) where a = Opposite(i,j), b =
// Opposite(j,i). If either opposite is NilVertex (the edge is on the
// boundary), Flip is a no-op and returns false. Otherwise the old pair of
// triangles is replaced by (i,b,a) and (j,a,b) along the new diagonal
// (a,b), and Flip returns true.
func (s *Soup) Flip(i, j int) bool {
	a := s.Opposite(i, j)
	b := s.Opposite(j, i)
	if a == NilVertex || b == NilVertex {
		return false
	}

	s.RemoveTriangle(i, j, a)
	s.RemoveTriangle(j, i, b)
	s.AddTriangle(i, b, a)
	s.AddTriangle(j, a, b)
	return true
}

// NumVertices returns the number of vertex stars.
func (s *Soup) NumVertices() int {
	return len(s.stars)
}

// Star returns the raw flat pair list for vertex v. Callers must not
// mutate the returned slice.
func (s *Soup) Star(v int) []int {
	return s.stars[v]
}

// Cells enumerates every triangle exactly once, as clockwise triples
// (i,s,t), by iterating each vertex i's star pairs (s,t) and emitting the
// triangle only when i is the smallest of the three indices. Order is
// deterministic for a fixed star layout but is otherwise an implementation
// detail.
func (s *Soup) Cells() [][3]int {
	var out [][3]int
	for i, arr := range s.stars {
		for idx := 0; idx+1 < len(arr); idx += 2 {
			t, u := arr[idx], arr[idx+1]
			if i < t && i < u {
				out = append(out, [3]int{i, t, u})
			}
		}
	}
	return out
}
