// Command render_svg triangulates a point set read from a JSON document
// (the same {points,edges} shape cmd/triangulate reads) and writes an SVG
// rendering of the result: triangulate, then hand the cells to a renderer,
// then write a file.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/cdt2d/cdt2d/cdt"
	"github.com/cdt2d/cdt2d/geom"
	"github.com/cdt2d/cdt2d/svgrender"
)

type input struct {
	Points [][2]float64 `json:"points"`
	Edges  [][2]int     `json:"edges"`
}

func main() {
	inPath := flag.String("in", "", "path to a JSON {points,edges} document (default: stdin)")
	outPath := flag.String("out", "triangulation.svg", "output SVG path")
	width := flag.Int("width", 800, "canvas width in pixels")
	height := flag.Int("height", 800, "canvas height in pixels")
	flag.Parse()

	r := os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatalf("render_svg: %v", err)
		}
		defer f.Close()
		r = f
	}

	var in input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		log.Fatalf("render_svg: decoding input: %v", err)
	}

	points := make([]geom.Point, len(in.Points))
	for i, p := range in.Points {
		points[i] = geom.Point{X: p[0], Y: p[1]}
	}

	cells, err := cdt.Triangulate(points, in.Edges, cdt.DefaultOptions())
	if err != nil {
		log.Fatalf("render_svg: %v", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("render_svg: %v", err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.Fatalf("render_svg: %v", err)
		}
	}()

	opts := svgrender.DefaultOptions()
	opts.Width, opts.Height = *width, *height
	svgrender.Render(out, points, cells, in.Edges, nil, opts)
}
