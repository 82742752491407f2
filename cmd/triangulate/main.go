// Command triangulate reads a point set and optional constraint edges from
// a small JSON document and prints the resulting triangles, one per line: a
// minimal driver over the library, not a general-purpose CLI.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cdt2d/cdt2d/cdt"
	"github.com/cdt2d/cdt2d/geom"
)

// input is the JSON document shape read from -in (or stdin): a flat list of
// [x,y] points and a list of [a,b] 0-based index pairs for constraint edges.
type input struct {
	Points [][2]float64 `json:"points"`
	Edges  [][2]int     `json:"edges"`
}

func main() {
	inPath := flag.String("in", "", "path to a JSON {points,edges} document (default: stdin)")
	delaunay := flag.Bool("delaunay", true, "run Delaunay refinement")
	interior := flag.Bool("interior", true, "include interior triangles")
	exterior := flag.Bool("exterior", true, "include exterior triangles")
	infinity := flag.Bool("infinity", false, "append infinite pseudo-triangles for hull edges")
	flag.Parse()

	r := os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatalf("triangulate: %v", err)
		}
		defer f.Close()
		r = f
	}

	in, err := readInput(r)
	if err != nil {
		log.Fatalf("triangulate: %v", err)
	}

	points := make([]geom.Point, len(in.Points))
	for i, p := range in.Points {
		points[i] = geom.Point{X: p[0], Y: p[1]}
	}

	opts := cdt.Options{
		Delaunay: *delaunay,
		Interior: *interior,
		Exterior: *exterior,
		Infinity: *infinity,
	}

	cells, err := cdt.Triangulate(points, in.Edges, opts)
	if err != nil {
		log.Fatalf("triangulate: %v", err)
	}

	for _, c := range cells {
		fmt.Printf("%d %d %d\n", c[0], c[1], c[2])
	}
}

func readInput(r io.Reader) (input, error) {
	var in input
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return input{}, fmt.Errorf("decoding input: %w", err)
	}
	return in, nil
}
