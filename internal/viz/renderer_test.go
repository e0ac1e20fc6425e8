package viz

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type op struct {
	Name  string
	Args  []float64
	Color string
}

// recordingSurface logs every drawing call.
type recordingSurface struct {
	w, h   float64
	ops    []op
	stroke string
	fill   string
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{w: SurfaceWidth, h: SurfaceHeight}
}

func (r *recordingSurface) Ready() bool {
	return r != nil
}

func (r *recordingSurface) Size() (float64, float64) {
	return r.w, r.h
}

func (r *recordingSurface) Clear() {
	r.ops = append(r.ops, op{Name: "clear"})
}

func (r *recordingSurface) SetFillStyle(c string) {
	r.fill = c
}

func (r *recordingSurface) BeginPath() {
	r.ops = append(r.ops, op{Name: "begin"})
}

func (r *recordingSurface) MoveTo(x, y float64) {
	r.ops = append(r.ops, op{Name: "move", Args: []float64{x, y}})
}

func (r *recordingSurface) LineTo(x, y float64) {
	r.ops = append(r.ops, op{Name: "line", Args: []float64{x, y}})
}

func (r *recordingSurface) Arc(x, y, rad float64) {
	r.ops = append(r.ops, op{Name: "arc", Args: []float64{x, y, rad}})
}

func (r *recordingSurface) Stroke() {
	r.ops = append(r.ops, op{Name: "stroke", Color: r.stroke})
}

func (r *recordingSurface) Fill() {
	r.ops = append(r.ops, op{Name: "fill", Color: r.fill})
}

func (r *recordingSurface) SetStrokeStyle(c string, _ float64) {
	r.stroke = c
}

func (r *recordingSurface) count(name string) int {
	n := 0
	for _, o := range r.ops {
		if o.Name == name {
			n++
		}
	}
	return n
}

func TestDrawAxesFirst(t *testing.T) {
	s := newRecordingSurface()
	NewRenderer().Draw(s, sinmod.Default(), 0)

	want := []op{
		{Name: "clear"},
		{Name: "begin"},
		{Name: "move", Args: []float64{0, 150}},
		{Name: "line", Args: []float64{600, 150}},
		{Name: "stroke", Color: "#333333"},
		{Name: "begin"},
		{Name: "move", Args: []float64{0, 0}},
		{Name: "line", Args: []float64{0, 300}},
		{Name: "stroke", Color: "#333333"},
	}
	if diff := cmp.Diff(want, s.ops[:len(want)]); diff != "" {
		t.Errorf("axis ops mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawCurvePolyline(t *testing.T) {
	s := newRecordingSurface()
	p := sinmod.Default()
	tm := 0.4
	NewRenderer().Draw(s, p, tm)

	// one move per axis and one for the curve
	require.Equal(t, 3, s.count("move"))
	// two axis segments plus width-1 curve segments
	assert.Equal(t, 2+SurfaceWidth-1, s.count("line"))

	var curve []op
	for i, o := range s.ops {
		if o.Name == "move" && len(curve) == 0 && i > 8 {
			curve = append(curve, o)
			continue
		}
		if len(curve) > 0 && o.Name == "line" {
			curve = append(curve, o)
		}
	}
	require.Len(t, curve, SurfaceWidth)
	for x, o := range curve {
		v := p.Value(float64(x)/SurfaceWidth*2*math.Pi*p.Period, tm)
		assert.InDelta(t, float64(x), o.Args[0], 1e-12)
		assert.InDelta(t, 150-v*75, o.Args[1], 1e-9)
	}
}

func TestDrawMarkers(t *testing.T) {
	s := newRecordingSurface()
	p := sinmod.Default()
	NewRenderer().Draw(s, p, 0)

	var arcs []op
	for _, o := range s.ops {
		if o.Name == "arc" {
			arcs = append(arcs, o)
		}
	}
	require.Len(t, arcs, 10)
	assert.Equal(t, 10, s.count("fill"))
	for i, a := range arcs {
		x := float64(i) * 60
		assert.Equal(t, x, a.Args[0])
		assert.InDelta(t, 150-p.Value(p.ScaledX(x, 600), 0)*75, a.Args[1], 1e-9)
		assert.Equal(t, 4.0, a.Args[2])
	}
	last := s.ops[len(s.ops)-1]
	assert.Equal(t, "#ff6600", last.Color)
}

func TestDrawNilSurface(t *testing.T) {
	r := NewRenderer()
	assert.NotPanics(t, func() { r.Draw(nil, sinmod.Default(), 0) })

	var bs *BrailleSurface
	assert.NotPanics(t, func() { r.Draw(bs, sinmod.Default(), 0) })
}

func TestMarkerPositions(t *testing.T) {
	got := MarkerPositions(600, 10)
	want := []float64{0, 60, 120, 180, 240, 300, 360, 420, 480, 540}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("marker positions (-want +got):\n%s", diff)
	}
}

func TestRendererForTheme(t *testing.T) {
	r := RendererForTheme(ThemeOcean)
	assert.Equal(t, string(ThemeOcean.Curve), r.CurveColor)
	assert.Equal(t, 10, r.Markers)
}
