package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Errors returned by rendering functions.
var (
	ErrEmptySeries    = errors.New("render: empty series")
	ErrLengthMismatch = errors.New("render: wavelength and flux lengths differ")
)

// Plot describes a static spectrum plot: axis labeling, canvas size, and an
// optional vertical marker with a text annotation at a line of interest.
type Plot struct {
	Title       string
	XLabel      string
	YLabel      string
	SeriesLabel string
	Width       vg.Length
	Height      vg.Length
	Marker      float64 // marker wavelength in µm; 0 disables the marker
	MarkerLabel string
}

// New returns a Plot with the default mid-infrared styling.
func New() *Plot {
	return &Plot{
		Title:       "Mid-infrared spectrum of a protoplanetary disk",
		XLabel:      "Wavelength [µm]",
		YLabel:      "Normalized Flux",
		SeriesLabel: "Synthetic spectrum",
		Width:       10 * vg.Inch,
		Height:      6 * vg.Inch,
	}
}

// Render builds the plot for the given series: the flux curve, a background
// grid, a legend, and (when configured) a dashed vertical marker with its
// annotation. The returned plot can be saved in any format gonum/plot
// supports.
func (p *Plot) Render(wavelength, flux []float64) (*plot.Plot, error) {
	if len(wavelength) == 0 {
		return nil, ErrEmptySeries
	}

	if len(wavelength) != len(flux) {
		return nil, ErrLengthMismatch
	}

	xys := make(plotter.XYs, len(wavelength))
	for i := range xys {
		xys[i].X = wavelength[i]
		xys[i].Y = flux[i]
	}

	plt := plot.New()
	plt.Title.Text = p.Title
	plt.X.Label.Text = p.XLabel
	plt.Y.Label.Text = p.YLabel
	plt.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("render: build flux line: %w", err)
	}

	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.Black

	plt.Add(line)
	plt.Legend.Add(p.SeriesLabel, line)
	plt.Legend.Top = true

	if p.Marker > 0 {
		if err := p.addMarker(plt, wavelength, flux); err != nil {
			return nil, err
		}
	}

	return plt, nil
}

// addMarker draws a dashed vertical line spanning the flux range at the
// marker wavelength plus a label next to it.
func (p *Plot) addMarker(plt *plot.Plot, wavelength, flux []float64) error {
	minFlux, maxFlux := flux[0], flux[0]
	for _, v := range flux {
		if v < minFlux {
			minFlux = v
		}

		if v > maxFlux {
			maxFlux = v
		}
	}

	markerColor := color.RGBA{R: 220, A: 255}

	vline, err := plotter.NewLine(plotter.XYs{
		{X: p.Marker, Y: minFlux},
		{X: p.Marker, Y: maxFlux},
	})
	if err != nil {
		return fmt.Errorf("render: build marker line: %w", err)
	}

	vline.LineStyle.Width = vg.Points(2)
	vline.LineStyle.Color = markerColor
	vline.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	plt.Add(vline)

	if p.MarkerLabel == "" {
		return nil
	}

	plt.Legend.Add(p.MarkerLabel, vline)

	span := wavelength[len(wavelength)-1] - wavelength[0]

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: p.Marker + 0.02*span, Y: maxFlux * 0.95}},
		Labels: []string{p.MarkerLabel},
	})
	if err != nil {
		return fmt.Errorf("render: build marker label: %w", err)
	}

	labels.TextStyle[0].Color = markerColor

	plt.Add(labels)

	return nil
}

// Save renders the series and writes it to path as a PNG. The image is
// written to a temporary file in the target directory first and renamed into
// place, so a failed save never leaves a partial output file.
func (p *Plot) Save(wavelength, flux []float64, path string) error {
	plt, err := p.Render(wavelength, flux)
	if err != nil {
		return err
	}

	wt, err := plt.WriterTo(p.Width, p.Height, "png")
	if err != nil {
		return fmt.Errorf("render: encode plot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("render: create temporary output: %w", err)
	}

	if _, err := wt.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("render: write plot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("render: close temporary output: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("render: replace output file: %w", err)
	}

	return nil
}
