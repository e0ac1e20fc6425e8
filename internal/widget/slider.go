package widget

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/sinmod/internal/sinmod"
)

// Slider is a range input bound to one parameter.
type Slider struct {
	Field sinmod.Field
	sinmod.Range
}

// Sliders returns the control sliders in display order.
func Sliders() []Slider {
	out := make([]Slider, 0, len(sinmod.Fields))
	for _, f := range sinmod.Fields {
		r, _ := sinmod.RangeOf(f)
		out = append(out, Slider{Field: f, Range: r})
	}
	return out
}

// Snap quantises v onto the step grid starting at Min and clamps it to
// the slider range. The result never exceeds Max, so for phase the top
// reachable value is the last step below 2π.
func (s Slider) Snap(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	steps := math.Round((v - s.Min) / s.Step)
	if steps < 0 {
		steps = 0
	}
	maxSteps := math.Floor((s.Max-s.Min)/s.Step + 1e-9)
	if steps > maxSteps {
		steps = maxSteps
	}
	// drop the float noise of k*step, e.g. 3*0.1
	return math.Round((s.Min+steps*s.Step)*1e9) / 1e9
}

// Nudge moves v by dir steps and snaps the result.
// A value already at or past the top stop is not pulled back down by an
// increase.
func (s Slider) Nudge(v float64, dir int) float64 {
	if dir > 0 && v >= s.Snap(s.Max) {
		return v
	}
	return s.Snap(v + float64(dir)*s.Step)
}

// Ratio is the position of v within the range, in [0, 1].
func (s Slider) Ratio(v float64) float64 {
	if s.Max == s.Min {
		return 0
	}
	return math.Max(0, math.Min(1, (v-s.Min)/(s.Max-s.Min)))
}

// Format renders v the way the slider emits its value.
func (s Slider) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Label formats the control label, two decimals for continuous fields
// and an integer for the harmonic count.
func Label(f sinmod.Field, v float64) string {
	if f == sinmod.FieldHarmonics {
		return fmt.Sprintf("%s: %d", f.Title(), int(math.Round(v)))
	}
	return fmt.Sprintf("%s (%s): %.2f", f.Title(), f.Symbol(), v)
}
