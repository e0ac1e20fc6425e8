// Package automation plays scripted parameter scenarios and parameter
// sweeps on a headless widget.
package automation

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/san-kum/sinmod/internal/config"
	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/san-kum/sinmod/internal/viz"
	"github.com/san-kum/sinmod/internal/widget"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of parameter changes and animation
// frames.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep applies a preset and/or parameter values, then advances
// the animation by Frames frames. Set keys accept any parameter name or
// alias.
type ScenarioStep struct {
	Preset string         `yaml:"preset"`
	Set    map[string]any `yaml:"set"`
	Frames int            `yaml:"frames"`
	Reset  bool           `yaml:"reset"`
}

// Frame is one rendered animation frame of a scenario run.
type Frame struct {
	Step   int
	Time   float64
	Params sinmod.Params
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// RunScenario plays every step on a fresh widget drawing onto s (which
// may be nil) and calls onFrame after the initial draw and after every
// animation frame. The widget is disposed before returning.
func RunScenario(ctx context.Context, scenario *Scenario, s viz.Surface, step float64, onFrame func(Frame)) (sinmod.Params, error) {
	sched := widget.NewManualScheduler()
	w := widget.New(sched, nil)
	defer w.Dispose()
	w.SetFrameStep(step)
	w.Mount(s)

	current := 0
	emit := func(t float64) {
		if onFrame != nil {
			onFrame(Frame{Step: current, Time: t, Params: w.Params()})
		}
	}
	w.OnFrame(emit)
	emit(w.Time())

	w.Toggle()
	for i, st := range scenario.Steps {
		current = i
		if err := ctx.Err(); err != nil {
			return w.Params(), err
		}
		log.Printf("scenario %s: step %d/%d", scenario.Name, i+1, len(scenario.Steps))

		if st.Reset {
			w.Reset()
		}
		base := w.Params()
		if st.Preset != "" {
			p, err := config.GetPreset(st.Preset)
			if err != nil {
				return w.Params(), fmt.Errorf("step %d: %w", i+1, err)
			}
			base = p
		}
		p, err := config.DecodeParams(base, st.Set)
		if err != nil {
			return w.Params(), fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := w.Apply(p); err != nil {
			return w.Params(), fmt.Errorf("step %d: %w", i+1, err)
		}
		sched.Run(st.Frames)
	}
	return w.Params(), nil
}

// ParameterSweep walks one field across its slider range.
type ParameterSweep struct {
	Base  sinmod.Params
	Field sinmod.Field
	// Width is the number of columns sampled per value.
	Width int
	Time  float64
}

// SweepResult summarizes the sampled curve at one parameter value.
type SweepResult struct {
	Value float64
	Peak  float64
	RMS   float64
}

// RunSweep samples the curve at every slider position of the swept field.
func RunSweep(ctx context.Context, sweep *ParameterSweep) ([]SweepResult, error) {
	var slider *widget.Slider
	for _, sl := range widget.Sliders() {
		if sl.Field == sweep.Field {
			sl := sl
			slider = &sl
		}
	}
	if slider == nil {
		return nil, fmt.Errorf("%w: %q", sinmod.ErrUnknownParam, string(sweep.Field))
	}
	width := sweep.Width
	if width <= 0 {
		width = viz.SurfaceWidth
	}

	var results []SweepResult
	v := slider.Min
	for {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		p := sweep.Base
		if err := p.Set(sweep.Field, v); err != nil {
			return results, err
		}
		results = append(results, summarize(v, p.Sample(width, sweep.Time)))

		next := slider.Nudge(v, 1)
		if next <= v {
			break
		}
		v = next
	}
	return results, nil
}

func summarize(v float64, samples []float64) SweepResult {
	r := SweepResult{Value: v}
	sum := 0.0
	for _, s := range samples {
		r.Peak = math.Max(r.Peak, math.Abs(s))
		sum += s * s
	}
	if len(samples) > 0 {
		r.RMS = math.Sqrt(sum / float64(len(samples)))
	}
	return r
}
