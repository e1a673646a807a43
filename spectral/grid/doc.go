// Package grid constructs and queries wavelength sample grids.
//
// A grid is a strictly increasing []float64 of wavelength samples in µm,
// uniformly spaced and inclusive of both endpoints. All other spectral
// packages index flux series against grids produced here.
package grid
