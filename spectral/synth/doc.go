// Package synth constructs synthetic emission-line spectra.
//
// A spectrum is a flux series over a wavelength grid: a linear continuum
// normalized near 1.0, one Gaussian emission feature, and optional Gaussian
// noise from an explicit, caller-supplied random source. All operations are
// pure transforms of their inputs; the package holds no global state.
//
// # Usage
//
// Configure a Synthesizer and generate the series in one call:
//
//	s := &synth.Synthesizer{
//	    MinWavelength: 10, MaxWavelength: 30, Points: 500,
//	    ContinuumSlope: 0.02, ContinuumPivot: 20,
//	    Line: synth.Feature{Center: 17.22, Amplitude: 0.3, Sigma: 0.15},
//	}
//	wavelength, flux, err := s.Synthesize()
//
// For reproducible noise, supply a seeded source:
//
//	s.NoiseSigma = 0.02
//	s.Rand = rand.New(rand.NewSource(12345))
package synth
