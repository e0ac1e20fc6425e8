package export

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/san-kum/sinmod/internal/viz"
)

var ErrNoFrames = errors.New("export: no frames recorded")

// GIFRecorder captures rendered frames and encodes them as an animated GIF.
type GIFRecorder struct {
	surface  *RasterSurface
	renderer *viz.Renderer
	frames   []*image.Paletted
	// Delay between frames in 100ths of a second.
	Delay int
	// MaxFrames bounds the recording; later captures are dropped.
	MaxFrames int
}

// NewGIFRecorder records frames of px x py pixels.
func NewGIFRecorder(r *viz.Renderer, px, py int) *GIFRecorder {
	if r == nil {
		r = viz.NewRenderer()
	}
	return &GIFRecorder{
		surface:   NewRasterSurface(px, py),
		renderer:  r,
		Delay:     2,
		MaxFrames: 600,
	}
}

// Capture renders p at time t and appends the frame.
func (g *GIFRecorder) Capture(p sinmod.Params, t float64) {
	if len(g.frames) >= g.MaxFrames {
		return
	}
	g.renderer.Draw(g.surface, p, t)
	g.frames = append(g.frames, quantize(g.surface.Image()))
}

func (g *GIFRecorder) Len() int { return len(g.frames) }

// Encode writes the recorded animation.
func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

// Save writes the recording into dir under a unique name and returns
// the path.
func (g *GIFRecorder) Save(dir string) (string, error) {
	if len(g.frames) == 0 {
		return "", ErrNoFrames
	}
	path := filepath.Join(dir, fmt.Sprintf("sinmod-%s.gif", uuid.NewString()[:8]))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := g.Encode(f); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, nil
}
