package viz

import (
	"math"

	"github.com/san-kum/sinmod/internal/sinmod"
)

// Renderer paints the curve, its axes and the tracking markers.
type Renderer struct {
	AxisColor    string
	AxisWidth    float64
	CurveColor   string
	CurveWidth   float64
	MarkerColor  string
	MarkerRadius float64
	// Markers is the number of evenly spaced markers across the width.
	Markers int
}

func NewRenderer() *Renderer {
	return &Renderer{
		AxisColor:    "#333333",
		AxisWidth:    1,
		CurveColor:   "#0066cc",
		CurveWidth:   2,
		MarkerColor:  "#ff6600",
		MarkerRadius: 4,
		Markers:      10,
	}
}

// RendererForTheme returns a renderer using the curve colors of a theme.
func RendererForTheme(t Theme) *Renderer {
	r := NewRenderer()
	r.AxisColor = string(t.Axis)
	r.CurveColor = string(t.Curve)
	r.MarkerColor = string(t.Marker)
	return r
}

// Draw redraws the whole surface for parameters p at time t.
// A nil or not ready surface is skipped.
func (r *Renderer) Draw(s Surface, p sinmod.Params, t float64) {
	if s == nil || !s.Ready() {
		return
	}
	w, h := s.Size()
	s.Clear()

	s.SetStrokeStyle(r.AxisColor, r.AxisWidth)
	s.BeginPath()
	s.MoveTo(0, h/2)
	s.LineTo(w, h/2)
	s.Stroke()

	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(0, h)
	s.Stroke()

	s.SetStrokeStyle(r.CurveColor, r.CurveWidth)
	s.BeginPath()
	for x := 0; x < int(math.Ceil(w)); x++ {
		y := curveY(p, float64(x), w, h, t)
		if x == 0 {
			s.MoveTo(0, y)
		} else {
			s.LineTo(float64(x), y)
		}
	}
	s.Stroke()

	if r.Markers <= 0 {
		return
	}
	s.SetFillStyle(r.MarkerColor)
	for _, x := range MarkerPositions(w, r.Markers) {
		s.BeginPath()
		s.Arc(x, curveY(p, x, w, h, t), r.MarkerRadius)
		s.Fill()
	}
}

// MarkerPositions returns n horizontal positions spaced w/n apart from 0.
func MarkerPositions(w float64, n int) []float64 {
	out := make([]float64, 0, n)
	step := w / float64(n)
	for i := 0; i < n; i++ {
		out = append(out, float64(i)*step)
	}
	return out
}

func curveY(p sinmod.Params, x, w, h, t float64) float64 {
	v := p.Value(p.ScaledX(x, w), t)
	return h/2 - v*(h/4)
}
