package export

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/san-kum/sinmod/internal/viz"
)

// RasterSurface is a [viz.Surface] drawing onto an RGBA image through a
// gg context. The image may be larger than the logical surface; drawing
// is scaled to fit.
type RasterSurface struct {
	dc            *gg.Context
	width, height float64
	background    string
	stroke, fill  string
	lineWidth     float64
	hasPath       bool
}

// NewRasterSurface creates a surface showing the default logical area
// on an image of px x py pixels.
func NewRasterSurface(px, py int) *RasterSurface {
	dc := gg.NewContext(px, py)
	dc.Scale(float64(px)/viz.SurfaceWidth, float64(py)/viz.SurfaceHeight)
	return &RasterSurface{
		dc:         dc,
		width:      viz.SurfaceWidth,
		height:     viz.SurfaceHeight,
		background: "#f9fafb",
		lineWidth:  1,
	}
}

func (s *RasterSurface) Ready() bool { return s != nil && s.dc != nil }

func (s *RasterSurface) Size() (float64, float64) { return s.width, s.height }

func (s *RasterSurface) Clear() {
	s.dc.ClearPath()
	s.dc.SetHexColor(s.background)
	s.dc.Clear()
	s.hasPath = false
}

func (s *RasterSurface) SetStrokeStyle(color string, width float64) {
	s.stroke, s.lineWidth = color, width
}

func (s *RasterSurface) SetFillStyle(color string) { s.fill = color }

func (s *RasterSurface) BeginPath() {
	s.dc.ClearPath()
	s.hasPath = false
}

func (s *RasterSurface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
	s.hasPath = true
}

func (s *RasterSurface) LineTo(x, y float64) {
	s.dc.LineTo(x, y)
	s.hasPath = true
}

func (s *RasterSurface) Arc(cx, cy, r float64) {
	s.dc.NewSubPath()
	s.dc.DrawArc(cx, cy, r, 0, 2*math.Pi)
	s.dc.ClosePath()
	s.hasPath = true
}

func (s *RasterSurface) Stroke() {
	if !s.hasPath {
		return
	}
	s.dc.SetHexColor(s.stroke)
	s.dc.SetLineWidth(s.lineWidth)
	s.dc.StrokePreserve()
}

func (s *RasterSurface) Fill() {
	if !s.hasPath {
		return
	}
	s.dc.SetHexColor(s.fill)
	s.dc.FillPreserve()
}

// Image returns the backing image.
func (s *RasterSurface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the current image as PNG.
func (s *RasterSurface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// PNG renders one frame of p at time t and writes it as PNG.
func PNG(w io.Writer, r *viz.Renderer, p sinmod.Params, t float64, px, py int) error {
	if r == nil {
		r = viz.NewRenderer()
	}
	s := NewRasterSurface(px, py)
	r.Draw(s, p, t)
	return s.EncodePNG(w)
}
