package broaden

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-spectra/spectral/grid"
)

// Errors returned by broadening functions.
var (
	ErrInvalidSigma      = errors.New("broaden: kernel sigma must be positive")
	ErrInvalidResolution = errors.New("broaden: resolving power must be positive")
	ErrEmptyInput        = errors.New("broaden: empty input")
	ErrLengthMismatch    = errors.New("broaden: grid and flux lengths differ")
)

// fwhmFactor converts a Gaussian standard deviation to FWHM.
const fwhmFactor = 2.3548200450309493 // 2*sqrt(2*ln 2)

// Kernel returns a unit-area Gaussian convolution kernel sampled at integer
// offsets, truncated at ±5σ. sigma is given in samples.
func Kernel(sigma float64) ([]float64, error) {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return nil, ErrInvalidSigma
	}

	half := int(math.Ceil(5 * sigma))
	if half < 1 {
		half = 1
	}

	out := make([]float64, 2*half+1)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0

	for i := range out {
		d := float64(i - half)
		out[i] = math.Exp(-d * d / twoSigmaSq)
		sum += out[i]
	}

	for i := range out {
		out[i] /= sum
	}

	return out, nil
}

// Apply convolves flux with kernel and returns a series of the same length
// ("same" alignment). The edges are padded with the edge samples so the
// continuum level is preserved at the boundaries.
//
// The convolution runs in the frequency domain via FFT, the same approach
// used for sweep deconvolution.
func Apply(flux, kernel []float64) ([]float64, error) {
	if len(flux) == 0 {
		return nil, ErrEmptyInput
	}

	if len(kernel) == 0 || len(kernel)%2 == 0 {
		return nil, ErrInvalidSigma
	}

	half := len(kernel) / 2

	// Edge-pad so the kernel sees a constant continuation beyond the series.
	padded := make([]float64, len(flux)+2*half)
	for i := 0; i < half; i++ {
		padded[i] = flux[0]
		padded[len(padded)-1-i] = flux[len(flux)-1]
	}

	copy(padded[half:], flux)

	n := len(padded) + len(kernel) - 1
	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("broaden: failed to create FFT plan: %w", err)
	}

	a := make([]complex128, fftSize)
	for i, v := range padded {
		a[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, a); err != nil {
		return nil, fmt.Errorf("broaden: forward FFT failed: %w", err)
	}

	k := make([]complex128, fftSize)
	for i, v := range kernel {
		k[i] = complex(v, 0)
	}

	kFreq := make([]complex128, fftSize)
	if err := plan.Forward(kFreq, k); err != nil {
		return nil, fmt.Errorf("broaden: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= kFreq[i]
	}

	conv := make([]complex128, fftSize)
	if err := plan.Inverse(conv, aFreq); err != nil {
		return nil, fmt.Errorf("broaden: inverse FFT failed: %w", err)
	}

	// Full convolution of padded (len N+2h) and kernel (len 2h+1) has its
	// "same"-aligned window for the original series at offset 2*half.
	out := make([]float64, len(flux))
	for i := range out {
		out[i] = real(conv[i+2*half])
	}

	return out, nil
}

// Broaden convolves flux with the instrumental profile of a spectrograph of
// the given resolving power R = λ/Δλ, evaluated at the grid center. The
// profile FWHM in wavelength is λc/R.
//
// A profile much narrower than the sample spacing leaves the series
// unchanged (a copy is returned).
func Broaden(g, flux []float64, resolvingPower float64) ([]float64, error) {
	if resolvingPower <= 0 || math.IsNaN(resolvingPower) {
		return nil, ErrInvalidResolution
	}

	if len(g) == 0 {
		return nil, ErrEmptyInput
	}

	if len(g) != len(flux) {
		return nil, ErrLengthMismatch
	}

	center := (g[0] + g[len(g)-1]) / 2
	fwhm := center / resolvingPower
	sigma := fwhm / fwhmFactor / grid.Spacing(g)

	if sigma < 1e-3 {
		out := make([]float64, len(flux))
		copy(out, flux)

		return out, nil
	}

	kernel, err := Kernel(sigma)
	if err != nil {
		return nil, err
	}

	return Apply(flux, kernel)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
