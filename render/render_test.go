package render_test

import (
	"bytes"
	"encoding/json"
	"image/color"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectmaze/builder"
	"github.com/katalvlaran/rectmaze/geom"
	"github.com/katalvlaran/rectmaze/graph"
	"github.com/katalvlaran/rectmaze/gridgraph"
	"github.com/katalvlaran/rectmaze/render"
)

func tjunction(t *testing.T) (*builder.Maze, map[graph.NodeID]geom.Rect) {
	t.Helper()
	m := builder.MustBuild(builder.TJunction())
	grid, err := gridgraph.NewGrid(m.Cells)
	require.NoError(t, err)
	es, err := gridgraph.ExtractGraph(grid, m.Start, m.Goal)
	require.NoError(t, err)
	return m, es.Nodes()
}

func TestSolution_Colors(t *testing.T) {
	m, nodes := tjunction(t)
	img := render.Solution(render.Bitmap(m.Cells), nodes, []graph.NodeID{1, 2, 3})

	assert.Equal(t, render.DefaultPathColor, img.RGBAAt(0, 0), "start rectangle is on the path")
	assert.Equal(t, render.DefaultPathColor, img.RGBAAt(6, 2), "goal rectangle is on the path")
	assert.Equal(t, render.DefaultNodeColor, img.RGBAAt(5, 6), "dead-end branch")
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(0, 1), "walls keep the source pixel")
}

func TestSolution_Options(t *testing.T) {
	m, nodes := tjunction(t)
	blue := color.RGBA{B: 255, A: 255}
	img := render.Solution(render.Bitmap(m.Cells), nodes, []graph.NodeID{1, 99},
		render.WithPathColor(blue), render.WithPathOnly())
	assert.Equal(t, blue, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(5, 6), "off-path stays white")

	assert.Panics(t, func() { render.WithNodeColor(nil) })
	assert.Panics(t, func() { render.WithPathColor(nil) })
}

func TestPNGRoundTrip(t *testing.T) {
	m, _ := tjunction(t)
	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, render.Bitmap(m.Cells)))

	img, err := render.ReadImage(&buf)
	require.NoError(t, err)
	grid, err := gridgraph.FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 16, grid.Count(gridgraph.Clear))

	_, err = render.ReadImage(bytes.NewReader([]byte("not a png")))
	assert.Error(t, err)
}

func TestFeatureCollection(t *testing.T) {
	_, nodes := tjunction(t)
	fc := render.FeatureCollection(nodes, []graph.NodeID{1, 2, 3}, 1, 3)
	require.Len(t, fc.Features, 6)

	first := fc.Features[0]
	assert.Equal(t, "start", first.Properties["role"])
	assert.Equal(t, true, first.Properties["on_path"])
	assert.Equal(t, 3, first.Properties["area"])
	poly, ok := first.Geometry.(orb.Polygon)
	require.True(t, ok)
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{3, 1}}, poly.Bound())

	assert.Equal(t, "goal", fc.Features[2].Properties["role"])
	assert.Equal(t, false, fc.Features[4].Properties["on_path"])

	line, ok := fc.Features[5].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{1.5, 0.5}, {2.5, 3}, {5, 2.5}}, line)
	assert.Equal(t, 2, fc.Features[5].Properties["hops"])

	data, err := render.MarshalGeoJSON(nodes, nil, 1, 3)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "FeatureCollection", decoded["type"])
	assert.Len(t, decoded["features"], 5, "no path feature without a path")
}
