package synth

import (
	"errors"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectra/spectral/grid"
)

// Errors returned by synthesis functions.
var (
	ErrInvalidSigma   = errors.New("synth: feature sigma must be positive")
	ErrInvalidCenter  = errors.New("synth: feature center must be positive")
	ErrInvalidNoise   = errors.New("synth: noise sigma must be >= 0")
	ErrNoNoiseSource  = errors.New("synth: noise requires an explicit random source")
	ErrLengthMismatch = errors.New("synth: series length mismatch")
	ErrEmptyInput     = errors.New("synth: empty input")
)

// Feature describes a single Gaussian emission line.
type Feature struct {
	Center    float64 // line center in µm
	Amplitude float64 // peak height relative to the continuum
	Sigma     float64 // standard deviation in µm
}

// Validate checks that the Feature parameters are valid.
func (f Feature) Validate() error {
	if f.Sigma <= 0 || math.IsNaN(f.Sigma) {
		return ErrInvalidSigma
	}

	if f.Center <= 0 || math.IsNaN(f.Center) {
		return ErrInvalidCenter
	}

	return nil
}

// Synthesizer generates a synthetic spectrum: a linear continuum near 1.0
// with one Gaussian emission feature and optional Gaussian noise.
//
// The zero slope gives a flat continuum at exactly 1.0. Noise is drawn only
// from an explicitly supplied Rand so that repeated runs with the same seed
// are reproducible; a nil Rand disables noise.
type Synthesizer struct {
	MinWavelength  float64 // µm
	MaxWavelength  float64 // µm
	Points         int
	ContinuumSlope float64 // flux per µm
	ContinuumPivot float64 // µm, wavelength where the continuum equals 1.0
	Line           Feature
	NoiseSigma     float64    // standard deviation of additive noise
	Rand           *rand.Rand // noise source; nil disables noise
}

// Validate checks that the Synthesizer parameters are valid.
func (s *Synthesizer) Validate() error {
	if s.Points < 2 {
		return grid.ErrInvalidPointCount
	}

	if s.MinWavelength <= 0 || s.MinWavelength >= s.MaxWavelength {
		return grid.ErrInvalidRange
	}

	if err := s.Line.Validate(); err != nil {
		return err
	}

	if s.NoiseSigma < 0 || math.IsNaN(s.NoiseSigma) {
		return ErrInvalidNoise
	}

	if s.NoiseSigma > 0 && s.Rand == nil {
		return ErrNoNoiseSource
	}

	return nil
}

// Grid returns the wavelength grid for the configured range.
func (s *Synthesizer) Grid() ([]float64, error) {
	return grid.Linspace(s.MinWavelength, s.MaxWavelength, s.Points)
}

// Baseline returns the continuum flux for each wavelength in g:
//
//	c(λ) = 1 + slope*(λ - pivot)
//
// plus Gaussian noise of NoiseSigma when a Rand is configured. With zero
// slope and no noise the result is exactly 1.0 everywhere.
func (s *Synthesizer) Baseline(g []float64) ([]float64, error) {
	if len(g) == 0 {
		return nil, ErrEmptyInput
	}

	if s.NoiseSigma < 0 || math.IsNaN(s.NoiseSigma) {
		return nil, ErrInvalidNoise
	}

	if s.NoiseSigma > 0 && s.Rand == nil {
		return nil, ErrNoNoiseSource
	}

	out := make([]float64, len(g))
	for i, w := range g {
		out[i] = 1 + s.ContinuumSlope*(w-s.ContinuumPivot)
	}

	if s.NoiseSigma > 0 {
		for i := range out {
			out[i] += s.NoiseSigma * s.Rand.NormFloat64()
		}
	}

	return out, nil
}

// AddGaussian returns a new flux series with the Gaussian profile of f added
// to flux:
//
//	out[i] = flux[i] + A * exp(-(g[i]-c)^2 / (2σ^2))
//
// The inputs are not modified. Samples beyond a few σ from the center are
// numerically indistinguishable from the input.
func AddGaussian(g, flux []float64, f Feature) ([]float64, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	if len(g) == 0 {
		return nil, ErrEmptyInput
	}

	if len(g) != len(flux) {
		return nil, ErrLengthMismatch
	}

	out := make([]float64, len(flux))
	twoSigmaSq := 2 * f.Sigma * f.Sigma

	for i := range out {
		d := g[i] - f.Center
		out[i] = flux[i] + f.Amplitude*math.Exp(-d*d/twoSigmaSq)
	}

	return out, nil
}

// ApplyResponse returns flux multiplied sample-wise by an instrument or
// throughput response curve. Both series must have the same length.
func ApplyResponse(flux, response []float64) ([]float64, error) {
	if len(flux) == 0 {
		return nil, ErrEmptyInput
	}

	if len(flux) != len(response) {
		return nil, ErrLengthMismatch
	}

	out := make([]float64, len(flux))
	vecmath.MulBlock(out, flux, response)

	return out, nil
}

// Synthesize builds the wavelength grid and the full flux series:
// continuum, optional noise, and the configured emission line.
//
// This is the single entry point a rendering caller needs.
func (s *Synthesizer) Synthesize() (wavelength, flux []float64, err error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	g, err := s.Grid()
	if err != nil {
		return nil, nil, err
	}

	base, err := s.Baseline(g)
	if err != nil {
		return nil, nil, err
	}

	out, err := AddGaussian(g, base, s.Line)
	if err != nil {
		return nil, nil, err
	}

	return g, out, nil
}
