// Package analysis inspects the harmonic content of the sinusoid model.
package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/sinmod/internal/sinmod"
)

var ErrTooFewSamples = errors.New("analysis: need at least 2 samples per harmonic")

// PowerSpectrum returns the magnitude of the first len(data)/2 FFT bins.
func PowerSpectrum(data []float64) []float64 {
	out := fft.FFTReal(data)
	ps := make([]float64, len(out)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(out[i])
	}
	return ps
}

// Harmonic is the measured content of one harmonic.
type Harmonic struct {
	N         int
	Magnitude float64
	// Expected is A/N for harmonics inside the model, zero above it.
	Expected float64
}

// HarmonicSpectrum samples value(x, 0) over one fundamental period 2π/ω
// with n points and measures the first maxN harmonics. Harmonic k lands
// in FFT bin k, and its amplitude is 2|X[k]|/n.
func HarmonicSpectrum(p sinmod.Params, n, maxN int) ([]Harmonic, error) {
	if maxN < 1 || n/2 <= maxN {
		return nil, ErrTooFewSamples
	}
	period := 2 * math.Pi / p.AngularFrequency
	data := make([]float64, n)
	for i := range data {
		data[i] = p.Value(period*float64(i)/float64(n), 0)
	}

	ps := PowerSpectrum(data)
	out := make([]Harmonic, maxN)
	for k := 1; k <= maxN; k++ {
		h := Harmonic{N: k, Magnitude: 2 * ps[k] / float64(n)}
		if k <= p.Harmonics {
			h.Expected = p.Amplitude / float64(k)
		}
		out[k-1] = h
	}
	return out, nil
}

// Magnitudes extracts the measured magnitudes for plotting.
func Magnitudes(hs []Harmonic) []float64 {
	out := make([]float64, len(hs))
	for i, h := range hs {
		out[i] = h.Magnitude
	}
	return out
}
