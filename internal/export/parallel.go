package export

import (
	"image"
	"image/color/palette"
	"image/draw"
	"runtime"
	"sync"

	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/san-kum/sinmod/internal/viz"
)

// parallelFor runs fn over [0, n) split into contiguous chunks, one
// goroutine per chunk. Ranges shorter than minChunk run inline.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// RenderFrames renders p at each of times into paletted frames of px x py
// pixels. Chunks of frames are rendered concurrently, each chunk on its
// own surface.
func RenderFrames(r *viz.Renderer, p sinmod.Params, times []float64, px, py int) []*image.Paletted {
	if r == nil {
		r = viz.NewRenderer()
	}
	out := make([]*image.Paletted, len(times))
	parallelFor(len(times), 8, func(start, end int) {
		s := NewRasterSurface(px, py)
		for i := start; i < end; i++ {
			r.Draw(s, p, times[i])
			out[i] = quantize(s.Image())
		}
	})
	return out
}

func quantize(src image.Image) *image.Paletted {
	frame := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, src.Bounds(), src, image.Point{})
	return frame
}

// Animation renders frames consecutive animation frames starting at
// time zero, step apart, into a recorder ready to encode. At most
// MaxFrames frames are rendered.
func Animation(r *viz.Renderer, p sinmod.Params, frames int, step float64, px, py int) *GIFRecorder {
	g := NewGIFRecorder(r, px, py)
	if frames > g.MaxFrames {
		frames = g.MaxFrames
	}
	if frames < 0 {
		frames = 0
	}
	times := make([]float64, frames)
	for i := range times {
		times[i] = float64(i) * step
	}
	g.frames = RenderFrames(g.renderer, p, times, px, py)
	return g
}
