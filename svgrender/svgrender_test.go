package svgrender

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdt2d/cdt2d/geom"
)

func TestRender_ProducesWellFormedSVG(t *testing.T) {
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	cells := [][3]int{{0, 1, 2}, {0, 2, 3}}
	edges := [][2]int{{0, 2}}

	var buf bytes.Buffer
	Render(&buf, points, cells, edges, nil, DefaultOptions())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 2, strings.Count(out, "<polygon"))
	assert.Equal(t, 1, strings.Count(out, "<line"))
}

func TestRender_SkipsInfiniteTriangles(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	cells := [][3]int{{1, 0, -1}}

	var buf bytes.Buffer
	Render(&buf, points, cells, nil, nil, DefaultOptions())

	assert.NotContains(t, buf.String(), "<polygon")
}
