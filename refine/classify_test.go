package refine

import (
	"testing"

	"github.com/cdt2d/cdt2d/star"
)

// buildFramedSquare returns the star.Soup for a square annulus: an outer
// 4x4 square (vertices 0-3) framing a 2x2 inner square (vertices 4-7,
// constrained), with the inner square's own interior triangulated too (via
// diagonal (4,6)) so the hole's two triangles sit on the far side of the
// constraint from the eight frame triangles. Every AddTriangle call below
// lists vertices in clockwise order, verified by hand against the
// orientation convention the star package requires.
func buildFramedSquare() *star.Soup {
	constraints := []star.Edge{
		{A: 4, B: 5}, {A: 4, B: 7}, {A: 5, B: 6}, {A: 6, B: 7},
	}
	soup := star.New(8, constraints)

	// Frame: one picture-frame strip per outer edge, each split in two.
	soup.AddTriangle(0, 5, 1)
	soup.AddTriangle(0, 4, 5)
	soup.AddTriangle(1, 6, 2)
	soup.AddTriangle(1, 5, 6)
	soup.AddTriangle(2, 7, 3)
	soup.AddTriangle(2, 6, 7)
	soup.AddTriangle(3, 4, 0)
	soup.AddTriangle(3, 7, 4)

	// Hole interior, split along diagonal (4,6).
	soup.AddTriangle(4, 6, 5)
	soup.AddTriangle(4, 7, 6)

	return soup
}

func toSet(cells [][3]int) map[[3]int]bool {
	out := make(map[[3]int]bool, len(cells))
	for _, c := range cells {
		out[rotateCell(c[0], c[1], c[2])] = true
	}
	return out
}

func TestClassify_AllReturnsEveryCell(t *testing.T) {
	soup := buildFramedSquare()
	cells := Classify(soup, All, false)
	if len(cells) != 10 {
		t.Fatalf("len(cells) = %d, want 10", len(cells))
	}
}

func TestClassify_ExteriorIsTheFrame(t *testing.T) {
	soup := buildFramedSquare()
	cells := Classify(soup, Exterior, false)
	if len(cells) != 8 {
		t.Fatalf("len(cells) = %d, want 8 frame triangles, got %v", len(cells), cells)
	}

	hole := toSet([][3]int{{4, 6, 5}, {4, 7, 6}})
	for _, c := range cells {
		if hole[rotateCell(c[0], c[1], c[2])] {
			t.Fatalf("hole triangle %v labeled Exterior", c)
		}
	}
}

func TestClassify_InteriorIsTheHole(t *testing.T) {
	soup := buildFramedSquare()
	cells := Classify(soup, Interior, false)
	if len(cells) != 2 {
		t.Fatalf("len(cells) = %d, want 2 hole triangles, got %v", len(cells), cells)
	}

	want := toSet([][3]int{{4, 6, 5}, {4, 7, 6}})
	got := toSet(cells)
	for c := range want {
		if !got[c] {
			t.Fatalf("Interior result %v missing hole triangle %v", cells, c)
		}
	}
}

func TestClassify_InteriorAndExteriorPartitionAll(t *testing.T) {
	soup := buildFramedSquare()
	interior := Classify(soup, Interior, false)
	exterior := Classify(soup, Exterior, false)
	all := Classify(soup, All, false)

	if len(interior)+len(exterior) != len(all) {
		t.Fatalf("interior(%d) + exterior(%d) != all(%d)", len(interior), len(exterior), len(all))
	}
}

func TestClassify_EmptySoupReturnsNil(t *testing.T) {
	soup := star.New(0, nil)
	if got := Classify(soup, All, false); got != nil {
		t.Fatalf("Classify(empty) = %v, want nil", got)
	}
}
