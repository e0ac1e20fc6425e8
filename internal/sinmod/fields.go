package sinmod

import (
	"fmt"
	"math"
	"strings"
)

// Field names one member of the parameter set.
type Field string

const (
	FieldAmplitude        Field = "amplitude"
	FieldPhase            Field = "phase"
	FieldAngularFrequency Field = "angularFrequency"
	FieldPeriod           Field = "period"
	FieldHarmonics        Field = "harmonicCount"
)

// PhaseMax is the upper bound of the phase slider.
const PhaseMax = 2 * math.Pi

// Range is the min/max/step of the slider bound to a field.
type Range struct {
	Min, Max, Step float64
}

// Fields lists the parameters in display order.
var Fields = []Field{
	FieldAmplitude,
	FieldPhase,
	FieldAngularFrequency,
	FieldPeriod,
	FieldHarmonics,
}

var ranges = map[Field]Range{
	FieldAmplitude:        {Min: 0.1, Max: 2, Step: 0.1},
	FieldPhase:            {Min: 0, Max: PhaseMax, Step: 0.1},
	FieldAngularFrequency: {Min: 0.1, Max: 3, Step: 0.1},
	FieldPeriod:           {Min: 0.5, Max: 5, Step: 0.5},
	FieldHarmonics:        {Min: 1, Max: 10, Step: 1},
}

// aliases are matched case-insensitively.
var aliases = map[string]Field{
	"amplitude":        FieldAmplitude,
	"a":                FieldAmplitude,
	"phase":            FieldPhase,
	"phi":              FieldPhase,
	"angularfrequency": FieldAngularFrequency,
	"frequency":        FieldAngularFrequency,
	"omega":            FieldAngularFrequency,
	"period":           FieldPeriod,
	"harmoniccount":    FieldHarmonics,
	"harmonics":        FieldHarmonics,
}

// ParseField resolves a field name. Short names such as A, phi, omega
// and T are accepted.
func ParseField(name string) (Field, error) {
	if name == "T" {
		return FieldPeriod, nil
	}
	if f, ok := aliases[strings.ToLower(name)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

// RangeOf returns the slider range of a field.
func RangeOf(f Field) (Range, bool) {
	r, ok := ranges[f]
	return r, ok
}

// Symbol returns the short label used in the control panel.
func (f Field) Symbol() string {
	switch f {
	case FieldAmplitude:
		return "A"
	case FieldPhase:
		return "φ"
	case FieldAngularFrequency:
		return "ω"
	case FieldPeriod:
		return "T"
	case FieldHarmonics:
		return "n"
	}
	return string(f)
}

// Title is the human readable name of the field.
func (f Field) Title() string {
	switch f {
	case FieldAmplitude:
		return "Amplitude"
	case FieldPhase:
		return "Phase"
	case FieldAngularFrequency:
		return "Frequency"
	case FieldPeriod:
		return "Period"
	case FieldHarmonics:
		return "Harmonics"
	}
	return string(f)
}
