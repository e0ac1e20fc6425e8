package viz

// Logical size of the drawing surface.
const (
	SurfaceWidth  = 600
	SurfaceHeight = 300
)

// Surface is a 2D drawing surface with path, stroke and fill operations,
// modelled on an HTML canvas 2D context.
type Surface interface {
	// Ready reports whether the surface can be drawn on.
	Ready() bool
	// Size returns the logical width and height.
	Size() (w, h float64)
	Clear()
	SetStrokeStyle(color string, width float64)
	SetFillStyle(color string)
	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a full circle to the current path.
	Arc(cx, cy, r float64)
	Stroke()
	Fill()
}
