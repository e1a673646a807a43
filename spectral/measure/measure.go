package measure

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spectra/spectral/synth"
)

// Errors returned by line measurement.
var (
	ErrEmptyInput      = errors.New("measure: empty input")
	ErrLengthMismatch  = errors.New("measure: grid and flux lengths differ")
	ErrLineOutsideGrid = errors.New("measure: line window does not overlap the grid")
	ErrNoContinuum     = errors.New("measure: not enough continuum samples outside the line window")
)

// windowSigmas is the half-width of the line window in units of the
// expected line sigma. Samples outside it count as continuum.
const windowSigmas = 5.0

// Result holds emission-line measurement results.
type Result struct {
	PeakIndex       int     // sample index of the line peak
	PeakWavelength  float64 // µm
	PeakFlux        float64
	Amplitude       float64 // peak flux above the continuum
	FWHM            float64 // µm; NaN when no half-maximum crossing exists
	EquivalentWidth float64 // µm; positive for emission
	ContinuumMean   float64
	ContinuumRMS    float64 // standard deviation of the continuum samples
	SNR             float64 // Amplitude / ContinuumRMS; +Inf for a noiseless continuum
}

// Measure locates and characterizes one emission line in flux. The expected
// line position and width come from f; everything farther than 5σ from the
// center is treated as continuum.
//
// The continuum is summarized by its mean and standard deviation. The peak
// is the maximum sample inside the window, the FWHM comes from linear
// interpolation at half maximum, and the equivalent width from trapezoidal
// integration of flux/continuum - 1 across the window.
func Measure(g, flux []float64, f synth.Feature) (Result, error) {
	if err := f.Validate(); err != nil {
		return Result{}, err
	}

	if len(g) == 0 {
		return Result{}, ErrEmptyInput
	}

	if len(g) != len(flux) {
		return Result{}, ErrLengthMismatch
	}

	lo, hi := windowBounds(g, f)
	if lo > hi {
		return Result{}, ErrLineOutsideGrid
	}

	continuum := make([]float64, 0, len(g)-(hi-lo+1))
	for i := range g {
		if i < lo || i > hi {
			continuum = append(continuum, flux[i])
		}
	}

	if len(continuum) < 2 {
		return Result{}, ErrNoContinuum
	}

	res := Result{
		ContinuumMean: stat.Mean(continuum, nil),
		ContinuumRMS:  stat.StdDev(continuum, nil),
	}

	res.PeakIndex = lo
	for i := lo; i <= hi; i++ {
		if flux[i] > flux[res.PeakIndex] {
			res.PeakIndex = i
		}
	}

	res.PeakWavelength = g[res.PeakIndex]
	res.PeakFlux = flux[res.PeakIndex]
	res.Amplitude = res.PeakFlux - res.ContinuumMean
	res.FWHM = fwhm(g, flux, res.PeakIndex, res.ContinuumMean+res.Amplitude/2)
	res.EquivalentWidth = equivalentWidth(g, flux, lo, hi, res.ContinuumMean)

	if res.ContinuumRMS == 0 {
		res.SNR = math.Inf(1)
	} else {
		res.SNR = res.Amplitude / res.ContinuumRMS
	}

	return res, nil
}

// windowBounds returns the inclusive index range within 5σ of the line center.
// lo > hi signals an empty window.
func windowBounds(g []float64, f synth.Feature) (lo, hi int) {
	left := f.Center - windowSigmas*f.Sigma
	right := f.Center + windowSigmas*f.Sigma

	lo = 0
	for lo < len(g) && g[lo] < left {
		lo++
	}

	hi = len(g) - 1
	for hi >= 0 && g[hi] > right {
		hi--
	}

	return lo, hi
}

// fwhm measures the full width at the given half-maximum level by walking
// outward from the peak and interpolating the two crossings linearly.
// Returns NaN when either crossing lies outside the grid.
func fwhm(g, flux []float64, peak int, half float64) float64 {
	left := math.NaN()

	for i := peak; i > 0; i-- {
		if flux[i-1] <= half && flux[i] > half {
			left = crossing(g[i-1], g[i], flux[i-1], flux[i], half)
			break
		}
	}

	right := math.NaN()

	for i := peak; i < len(flux)-1; i++ {
		if flux[i+1] <= half && flux[i] > half {
			right = crossing(g[i], g[i+1], flux[i], flux[i+1], half)
			break
		}
	}

	return right - left
}

// crossing linearly interpolates the wavelength where flux crosses level
// between two adjacent samples.
func crossing(w0, w1, f0, f1, level float64) float64 {
	if f1 == f0 {
		return w0
	}

	return w0 + (w1-w0)*(level-f0)/(f1-f0)
}

// equivalentWidth integrates flux/continuum - 1 over [lo, hi] with the
// trapezoidal rule. Positive for emission, negative for absorption.
func equivalentWidth(g, flux []float64, lo, hi int, continuum float64) float64 {
	if continuum == 0 || hi <= lo {
		return 0
	}

	sum := 0.0
	for i := lo; i < hi; i++ {
		a := flux[i]/continuum - 1
		b := flux[i+1]/continuum - 1
		sum += (a + b) / 2 * (g[i+1] - g[i])
	}

	return sum
}
