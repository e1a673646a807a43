// Package render draws a synthesized spectrum to a static image file.
//
// Rendering is built on gonum.org/v1/plot: a flux-vs-wavelength line with
// grid and legend, an optional dashed vertical marker at a spectral line of
// interest, and an annotation next to it. Save writes PNG output atomically
// (temporary file plus rename), so callers never observe a partial image.
package render
