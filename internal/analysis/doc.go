// Package analysis measures the frequency content of the sinusoid model.
//
// [HarmonicSpectrum] samples one fundamental period and reports the
// measured magnitude of each harmonic next to the expected A/n:
//
//	hs, err := analysis.HarmonicSpectrum(p, 1024, 10)
//	for _, h := range hs {
//	    fmt.Println(h.N, h.Magnitude, h.Expected)
//	}
package analysis
