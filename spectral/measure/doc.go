// Package measure characterizes a single emission line in a flux series:
// peak position, amplitude above the continuum, FWHM, equivalent width,
// and a signal-to-noise estimate against the continuum scatter.
package measure
