// Package widget owns the interactive state of the sinusoid view: the
// parameter set, the animation clock and the frame callback handle.
//
// A Widget moves between two states, Idle and Animating, only through
// Toggle. Dispose is terminal from either state and always releases the
// pending frame callback.
package widget

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/san-kum/sinmod/internal/viz"
)

// FrameStep is the time added on every animation frame.
const FrameStep = 0.05

// ErrDisposed is returned by mutating calls after Dispose.
var ErrDisposed = errors.New("widget: disposed")

type State int

const (
	Idle State = iota
	Animating
	Disposed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	case Disposed:
		return "disposed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Widget is the control loop and state owner.
type Widget struct {
	params   sinmod.Params
	time     float64
	step     float64
	state    State
	handle   Handle
	sched    Scheduler
	surface  viz.Surface
	renderer *viz.Renderer
	redraws  int
	onFrame  func(t float64)
}

// New creates an idle widget with default parameters. A nil renderer
// selects viz.NewRenderer.
func New(sched Scheduler, r *viz.Renderer) *Widget {
	if r == nil {
		r = viz.NewRenderer()
	}
	return &Widget{
		params:   sinmod.Default(),
		step:     FrameStep,
		sched:    sched,
		renderer: r,
	}
}

func (w *Widget) Params() sinmod.Params { return w.params }
func (w *Widget) Time() float64         { return w.time }
func (w *Widget) State() State          { return w.state }
func (w *Widget) Animating() bool       { return w.state == Animating }

// Handle returns the pending frame handle, zero when none is scheduled.
func (w *Widget) Handle() Handle { return w.handle }

// Redraws counts the draws that reached a ready surface.
func (w *Widget) Redraws() int { return w.redraws }

// SetFrameStep overrides the per-frame time increment.
func (w *Widget) SetFrameStep(step float64) {
	if step > 0 {
		w.step = step
	}
}

// SetRenderer swaps the renderer and redraws.
func (w *Widget) SetRenderer(r *viz.Renderer) {
	if r == nil {
		return
	}
	w.renderer = r
	w.Redraw()
}

// OnFrame registers fn to run after every animation frame with the new time.
func (w *Widget) OnFrame(fn func(t float64)) { w.onFrame = fn }

// Mount attaches the drawing surface and draws the first frame.
func (w *Widget) Mount(s viz.Surface) {
	if w.state == Disposed {
		return
	}
	w.surface = s
	w.Redraw()
}

// Redraw paints the current parameters and time onto the surface.
// Without a ready surface nothing happens.
func (w *Widget) Redraw() {
	if w.surface == nil || !w.surface.Ready() {
		return
	}
	w.renderer.Draw(w.surface, w.params, w.time)
	w.redraws++
}

// Input handles a slider input event: value is parsed as a number and
// replaces the named parameter, then the view is redrawn. On error the
// parameters are unchanged.
func (w *Widget) Input(name, value string) error {
	if w.state == Disposed {
		return ErrDisposed
	}
	f, err := sinmod.ParseField(name)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", sinmod.ErrInvalidValue, f, value)
	}
	return w.Set(f, v)
}

// Set replaces one parameter and redraws.
func (w *Widget) Set(f sinmod.Field, v float64) error {
	if w.state == Disposed {
		return ErrDisposed
	}
	if err := w.params.Set(f, v); err != nil {
		return err
	}
	w.Redraw()
	return nil
}

// Apply replaces the whole parameter set after validating it.
func (w *Widget) Apply(p sinmod.Params) error {
	if w.state == Disposed {
		return ErrDisposed
	}
	if err := p.Validate(); err != nil {
		return err
	}
	w.params = p
	w.Redraw()
	return nil
}

// Reset restores the default parameters and rewinds time to zero.
// The animation state is kept.
func (w *Widget) Reset() {
	if w.state == Disposed {
		return
	}
	w.params = sinmod.Default()
	w.time = 0
	w.Redraw()
}

// Toggle starts or stops the animation and returns the new state.
func (w *Widget) Toggle() State {
	switch w.state {
	case Idle:
		w.state = Animating
		w.handle = w.sched.Schedule(w.frame)
	case Animating:
		w.cancel()
		w.state = Idle
	}
	return w.state
}

// Dispose releases the pending frame callback and detaches the surface.
// It is safe to call more than once.
func (w *Widget) Dispose() {
	w.cancel()
	w.state = Disposed
	w.surface = nil
	w.onFrame = nil
}

func (w *Widget) frame() {
	if w.state != Animating {
		return
	}
	w.time += w.step
	w.Redraw()
	if w.onFrame != nil {
		w.onFrame(w.time)
	}
	w.handle = w.sched.Schedule(w.frame)
}

func (w *Widget) cancel() {
	if w.sched != nil {
		w.sched.Cancel(w.handle)
	}
	w.handle = 0
}

// Label returns the control label of a field with its current value.
func (w *Widget) Label(f sinmod.Field) string {
	return Label(f, w.params.Get(f))
}
