// Package export renders frames of the sinusoid view to files.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/san-kum/sinmod/internal/viz"
)

// SVGSurface is a [viz.Surface] that collects SVG elements.
type SVGSurface struct {
	width, height float64
	background    string

	stroke      string
	strokeWidth float64
	fill        string

	path     strings.Builder
	circles  []string
	elements []string
}

func NewSVGSurface(w, h float64) *SVGSurface {
	return &SVGSurface{width: w, height: h, background: "#ffffff", strokeWidth: 1}
}

func (s *SVGSurface) Ready() bool { return s != nil && s.width > 0 && s.height > 0 }

func (s *SVGSurface) Size() (float64, float64) { return s.width, s.height }

func (s *SVGSurface) Clear() {
	s.elements = s.elements[:0]
	s.BeginPath()
}

func (s *SVGSurface) SetStrokeStyle(color string, width float64) {
	s.stroke, s.strokeWidth = color, width
}

func (s *SVGSurface) SetFillStyle(color string) { s.fill = color }

func (s *SVGSurface) BeginPath() {
	s.path.Reset()
	s.circles = s.circles[:0]
}

func (s *SVGSurface) MoveTo(x, y float64) {
	if s.path.Len() > 0 {
		s.path.WriteByte(' ')
	}
	fmt.Fprintf(&s.path, "M%.2f,%.2f", x, y)
}

func (s *SVGSurface) LineTo(x, y float64) {
	if s.path.Len() == 0 {
		s.MoveTo(x, y)
		return
	}
	fmt.Fprintf(&s.path, " L%.2f,%.2f", x, y)
}

func (s *SVGSurface) Arc(cx, cy, r float64) {
	s.circles = append(s.circles, fmt.Sprintf(`cx="%.2f" cy="%.2f" r="%.2f"`, cx, cy, r))
}

func (s *SVGSurface) Stroke() {
	if s.path.Len() > 0 {
		s.elements = append(s.elements, fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%g" d="%s"/>`,
			s.stroke, s.strokeWidth, s.path.String()))
	}
	for _, c := range s.circles {
		s.elements = append(s.elements, fmt.Sprintf(`<circle %s fill="none" stroke="%s" stroke-width="%g"/>`,
			c, s.stroke, s.strokeWidth))
	}
}

// Fill paints the circles of the current path.
func (s *SVGSurface) Fill() {
	for _, c := range s.circles {
		s.elements = append(s.elements, fmt.Sprintf(`<circle %s fill="%s"/>`, c, s.fill))
	}
}

// Elements returns the number of drawn elements.
func (s *SVGSurface) Elements() int { return len(s.elements) }

func (s *SVGSurface) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.width, s.height, s.width, s.height, s.background))
	for _, e := range s.elements {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// SVG renders one frame of p at time t as an SVG document.
func SVG(r *viz.Renderer, p sinmod.Params, t float64) string {
	if r == nil {
		r = viz.NewRenderer()
	}
	s := NewSVGSurface(viz.SurfaceWidth, viz.SurfaceHeight)
	r.Draw(s, p, t)
	return s.String()
}
