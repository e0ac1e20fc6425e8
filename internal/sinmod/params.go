// Package sinmod evaluates the multi-harmonic sinusoidal model
//
//	value(x, t) = Σ_{n=1}^{N} A·sin(n·ω·x + n·φ + t) / n
//
// whose harmonics decay as 1/n.
package sinmod

import (
	"fmt"
	"math"
)

const (
	DefaultAmplitude        = 1.0
	DefaultPhase            = 0.0
	DefaultAngularFrequency = 1.0
	DefaultPeriod           = 2.0
	DefaultHarmonics        = 3
)

// Params is the user tunable parameter set.
type Params struct {
	Amplitude        float64 `json:"amplitude" yaml:"amplitude" mapstructure:"amplitude"`
	Phase            float64 `json:"phase" yaml:"phase" mapstructure:"phase"`
	AngularFrequency float64 `json:"angularFrequency" yaml:"angular_frequency" mapstructure:"omega"`
	Period           float64 `json:"period" yaml:"period" mapstructure:"period"`
	Harmonics        int     `json:"harmonicCount" yaml:"harmonics" mapstructure:"harmonics"`
}

func Default() Params {
	return Params{
		Amplitude:        DefaultAmplitude,
		Phase:            DefaultPhase,
		AngularFrequency: DefaultAngularFrequency,
		Period:           DefaultPeriod,
		Harmonics:        DefaultHarmonics,
	}
}

// Value evaluates the model at phase coordinate x and time offset t.
func (p Params) Value(x, t float64) float64 {
	v := 0.0
	for n := 1; n <= p.Harmonics; n++ {
		v += p.Term(n, x, t)
	}
	return v
}

// Term is the contribution of the n-th harmonic.
func (p Params) Term(n int, x, t float64) float64 {
	fn := float64(n)
	return p.Amplitude * math.Sin(fn*p.AngularFrequency*x+p.Phase*fn+t) / fn
}

// ScaledX maps a horizontal position in [0, width) to the phase coordinate
// shown at that position.
func (p Params) ScaledX(x, width float64) float64 {
	return (x / width) * 2 * math.Pi * p.Period
}

// Sample evaluates the model at every integer column of a surface
// width units wide.
func (p Params) Sample(width int, t float64) []float64 {
	if width <= 0 {
		return nil
	}
	out := make([]float64, width)
	for x := range out {
		out[x] = p.Value(p.ScaledX(float64(x), float64(width)), t)
	}
	return out
}

// Get returns the value of a field as float64.
func (p Params) Get(f Field) float64 {
	switch f {
	case FieldAmplitude:
		return p.Amplitude
	case FieldPhase:
		return p.Phase
	case FieldAngularFrequency:
		return p.AngularFrequency
	case FieldPeriod:
		return p.Period
	case FieldHarmonics:
		return float64(p.Harmonics)
	}
	return math.NaN()
}

// Set replaces a field after checking it against the slider range.
// On error p is left unchanged.
func (p *Params) Set(f Field, v float64) error {
	if err := check(f, v); err != nil {
		return err
	}
	switch f {
	case FieldAmplitude:
		p.Amplitude = v
	case FieldPhase:
		p.Phase = v
	case FieldAngularFrequency:
		p.AngularFrequency = v
	case FieldPeriod:
		p.Period = v
	case FieldHarmonics:
		p.Harmonics = int(math.Round(v))
	}
	return nil
}

// Validate checks every field against its slider range.
func (p Params) Validate() error {
	for _, f := range Fields {
		if err := check(f, p.Get(f)); err != nil {
			return err
		}
	}
	return nil
}

// boundsEps absorbs the rounding of step arithmetic such as 20*0.1.
const boundsEps = 1e-9

func check(f Field, v float64) error {
	r, ok := ranges[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParam, string(f))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Field: f, Value: v, Wrapped: ErrNotFinite}
	}
	if v < r.Min-boundsEps || v > r.Max+boundsEps {
		return &ParamError{Field: f, Value: v, Wrapped: ErrParameterBounds}
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("A=%.2f φ=%.2f ω=%.2f T=%.2f n=%d",
		p.Amplitude, p.Phase, p.AngularFrequency, p.Period, p.Harmonics)
}
