package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/katalvlaran/rectmaze/geom"
	"github.com/katalvlaran/rectmaze/graph"
)

var (
	// DefaultNodeColor fills every decomposition rectangle.
	DefaultNodeColor = color.RGBA{G: 255, A: 255}
	// DefaultPathColor fills rectangles on the solution path.
	DefaultPathColor = color.RGBA{R: 255, A: 255}
)

// Options configures Solution.
type Options struct {
	NodeColor color.Color
	PathColor color.Color
	// SkipNodes leaves off-path rectangles unpainted.
	SkipNodes bool
}

// Option is a functional option for Solution.
type Option func(*Options)

// WithNodeColor overrides the fill of off-path rectangles. Panics on nil.
func WithNodeColor(c color.Color) Option {
	if c == nil {
		panic("render: WithNodeColor(nil)")
	}
	return func(o *Options) { o.NodeColor = c }
}

// WithPathColor overrides the fill of path rectangles. Panics on nil.
func WithPathColor(c color.Color) Option {
	if c == nil {
		panic("render: WithPathColor(nil)")
	}
	return func(o *Options) { o.PathColor = c }
}

// WithPathOnly paints only the path.
func WithPathOnly() Option {
	return func(o *Options) { o.SkipNodes = true }
}

// Solution copies src to RGBA and paints the node rectangles and then the
// path rectangles over it. Rectangles are in cell coordinates relative to
// src.Bounds().Min. Path ids missing from nodes are ignored.
func Solution(src image.Image, nodes map[graph.NodeID]geom.Rect, path []graph.NodeID, opts ...Option) *image.RGBA {
	o := Options{NodeColor: DefaultNodeColor, PathColor: DefaultPathColor}
	for _, opt := range opts {
		opt(&o)
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	canvas := geom.NewRect(geom.Pt(0, 0), geom.Pt(b.Dx(), b.Dy()))

	if !o.SkipNodes {
		fill := image.NewUniform(o.NodeColor)
		for _, r := range nodes {
			draw.Draw(dst, toImage(r.Intersect(canvas)), fill, image.Point{}, draw.Src)
		}
	}
	fill := image.NewUniform(o.PathColor)
	for _, id := range path {
		if r, ok := nodes[id]; ok {
			draw.Draw(dst, toImage(r.Intersect(canvas)), fill, image.Point{}, draw.Src)
		}
	}
	return dst
}

// Bitmap renders a [][]uint8 grid as an 8-bit gray image.
func Bitmap(cells [][]uint8) *image.Gray {
	h := len(cells)
	w := 0
	if h > 0 {
		w = len(cells[0])
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y, row := range cells {
		copy(img.Pix[y*img.Stride:], row)
	}
	return img
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// ReadImage decodes a PNG from r.
func ReadImage(r io.Reader) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("render: decode png: %w", err)
	}
	return img, nil
}

func toImage(r geom.Rect) image.Rectangle {
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
