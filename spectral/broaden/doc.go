// Package broaden applies instrumental (resolution) broadening to a flux
// series by convolution with a Gaussian line-spread function.
//
// A spectrograph of resolving power R = λ/Δλ smears every spectral feature
// with a profile of FWHM λ/R. Broaden builds the matching unit-area Gaussian
// kernel in grid samples and convolves via FFT, preserving the continuum
// level and the series length.
package broaden
