package export

import (
	"bytes"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/san-kum/sinmod/internal/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGFrame(t *testing.T) {
	doc := SVG(nil, sinmod.Default(), 0)

	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `width="600" height="300"`)
	assert.True(t, strings.HasSuffix(doc, "</svg>"))
	// two axes, one curve
	assert.Equal(t, 3, strings.Count(doc, "<path "))
	assert.Contains(t, doc, `stroke="#0066cc" stroke-width="2"`)
	assert.Equal(t, 10, strings.Count(doc, `fill="#ff6600"`))
	assert.Contains(t, doc, `d="M0.00,150.00 L600.00,150.00"`)
}

func TestSVGCurveHasEveryColumn(t *testing.T) {
	s := NewSVGSurface(viz.SurfaceWidth, viz.SurfaceHeight)
	viz.NewRenderer().Draw(s, sinmod.Default(), 1.2)
	doc := s.String()

	start := strings.Index(doc, `stroke="#0066cc"`)
	require.Greater(t, start, 0)
	line := doc[start:strings.Index(doc[start:], "\n")+start]
	assert.Equal(t, 599, strings.Count(line, " L"))
	assert.Equal(t, 1, strings.Count(line, "M"))
}

func TestSVGClear(t *testing.T) {
	s := NewSVGSurface(100, 50)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(10, 10)
	s.Stroke()
	require.Equal(t, 1, s.Elements())
	s.Clear()
	assert.Zero(t, s.Elements())
}

func TestPNGFrame(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, nil, sinmod.Default(), 0, 600, 300))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	// the first marker covers the curve origin at (0, 150)
	r, g, b, _ := img.At(1, 150).RGBA()
	assert.Greater(t, r>>8, uint32(200), "expected marker orange, got %d,%d,%d", r>>8, g>>8, b>>8)
	assert.Less(t, b>>8, uint32(100))
}

func TestGIFRecorder(t *testing.T) {
	rec := NewGIFRecorder(nil, 120, 60)
	_, err := rec.Save(t.TempDir())
	assert.ErrorIs(t, err, ErrNoFrames)

	p := sinmod.Default()
	for i := 0; i < 3; i++ {
		rec.Capture(p, float64(i)*0.05)
	}
	require.Equal(t, 3, rec.Len())

	dir := t.TempDir()
	path, err := rec.Save(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 3)
}

func TestGIFRecorderMaxFrames(t *testing.T) {
	rec := NewGIFRecorder(nil, 60, 30)
	rec.MaxFrames = 2
	for i := 0; i < 5; i++ {
		rec.Capture(sinmod.Default(), 0)
	}
	assert.Equal(t, 2, rec.Len())
}

func TestTraceCSV(t *testing.T) {
	tr := NewTrace(sinmod.Default(), 4)
	assert.ErrorIs(t, tr.WriteCSV(&bytes.Buffer{}), ErrNoFrames)

	tr.Add(0)
	tr.Add(0.05)
	var buf bytes.Buffer
	require.NoError(t, tr.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time,x0,x1,x2,x3", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0.000000,0.000000,"))
	assert.True(t, strings.HasPrefix(lines[2], "0.050000,"))
}

func TestTraceJSON(t *testing.T) {
	tr := NewTrace(sinmod.Default(), 3)
	tr.Add(0.5)
	var buf bytes.Buffer
	require.NoError(t, tr.WriteJSON(&buf))

	out := buf.String()
	assert.Contains(t, out, `"harmonicCount": 3`)
	assert.Contains(t, out, `"times": [`)
	assert.Equal(t, 1, tr.Len())
	assert.Len(t, tr.Values[0], 3)
}

func TestRenderFramesMatchesCapture(t *testing.T) {
	p := sinmod.Default()
	times := []float64{0, 0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.4, 0.45, 0.5, 0.55, 0.6, 0.65, 0.7, 0.75, 0.8}
	frames := RenderFrames(nil, p, times, 120, 60)
	require.Len(t, frames, len(times))

	g := NewGIFRecorder(nil, 120, 60)
	for _, tm := range []float64{0, 0.4, 0.8} {
		g.Capture(p, tm)
	}
	assert.Equal(t, g.frames[0].Pix, frames[0].Pix)
	assert.Equal(t, g.frames[1].Pix, frames[8].Pix)
	assert.Equal(t, g.frames[2].Pix, frames[16].Pix)
}

func TestAnimationCapsAtMaxFrames(t *testing.T) {
	g := Animation(nil, sinmod.Default(), 5000, 0.05, 4, 2)
	assert.Equal(t, g.MaxFrames, g.Len())
	assert.Equal(t, 600, g.Len())

	assert.Zero(t, Animation(nil, sinmod.Default(), -3, 0.05, 4, 2).Len())
}

func TestAnimation(t *testing.T) {
	g := Animation(nil, sinmod.Default(), 12, 0.05, 60, 30)
	assert.Equal(t, 12, g.Len())

	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))
	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 12)
}
