package viz

import "math"

type point struct{ x, y float64 }

type circle struct{ cx, cy, r float64 }

// BrailleSurface is a [Surface] that rasterises onto a braille [Canvas].
// Logical coordinates are scaled onto the canvas dot grid; line widths
// are ignored since a dot is already wider than a logical unit.
type BrailleSurface struct {
	canvas        *Canvas
	width, height float64
	stroke, fill  string

	subpaths [][]point
	circles  []circle
}

// NewBrailleSurface creates a surface of cols x rows braille cells
// showing the default logical area.
func NewBrailleSurface(cols, rows int) *BrailleSurface {
	return &BrailleSurface{
		canvas: NewCanvas(cols, rows),
		width:  SurfaceWidth,
		height: SurfaceHeight,
	}
}

// Canvas exposes the backing canvas.
func (s *BrailleSurface) Canvas() *Canvas {
	if s == nil {
		return nil
	}
	return s.canvas
}

func (s *BrailleSurface) Ready() bool {
	return s != nil && s.canvas != nil && s.canvas.Width > 0 && s.canvas.Height > 0
}

func (s *BrailleSurface) Size() (float64, float64) { return s.width, s.height }

func (s *BrailleSurface) Clear() {
	s.canvas.Clear()
	s.BeginPath()
}

func (s *BrailleSurface) SetStrokeStyle(color string, _ float64) { s.stroke = color }

func (s *BrailleSurface) SetFillStyle(color string) { s.fill = color }

func (s *BrailleSurface) BeginPath() {
	s.subpaths = s.subpaths[:0]
	s.circles = s.circles[:0]
}

func (s *BrailleSurface) MoveTo(x, y float64) {
	s.subpaths = append(s.subpaths, []point{{x, y}})
}

func (s *BrailleSurface) LineTo(x, y float64) {
	if len(s.subpaths) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.subpaths) - 1
	s.subpaths[last] = append(s.subpaths[last], point{x, y})
}

func (s *BrailleSurface) Arc(cx, cy, r float64) {
	s.circles = append(s.circles, circle{cx, cy, r})
}

func (s *BrailleSurface) Stroke() {
	s.canvas.Pen = s.stroke
	for _, sp := range s.subpaths {
		x0, y0 := s.dot(sp[0])
		if len(sp) == 1 {
			s.canvas.Set(x0, y0)
			continue
		}
		for _, p := range sp[1:] {
			x1, y1 := s.dot(p)
			s.canvas.DrawLine(x0, y0, x1, y1)
			x0, y0 = x1, y1
		}
	}
	for _, c := range s.circles {
		rx, ry := s.radii(c.r)
		cx, cy := s.dot(point{c.cx, c.cy})
		steps := int(math.Max(8, 2*math.Pi*math.Max(rx, ry)))
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			s.canvas.Set(cx+int(math.Round(rx*math.Cos(a))), cy+int(math.Round(ry*math.Sin(a))))
		}
	}
}

// Fill paints the circles of the current path. Open polylines are not filled.
func (s *BrailleSurface) Fill() {
	s.canvas.Pen = s.fill
	for _, c := range s.circles {
		rx, ry := s.radii(c.r)
		cx, cy := s.dot(point{c.cx, c.cy})
		s.canvas.FillEllipse(cx, cy, rx, ry)
	}
}

func (s *BrailleSurface) dot(p point) (int, int) {
	x := int(math.Floor(p.x * float64(s.canvas.DotWidth()) / s.width))
	y := int(math.Floor(p.y * float64(s.canvas.DotHeight()) / s.height))
	return x, y
}

func (s *BrailleSurface) radii(r float64) (float64, float64) {
	return r * float64(s.canvas.DotWidth()) / s.width, r * float64(s.canvas.DotHeight()) / s.height
}
