package synth_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/spectral/grid"
	"github.com/cwbudde/algo-spectra/spectral/synth"
)

func ExampleSynthesizer_Synthesize() {
	s := &synth.Synthesizer{
		MinWavelength: 10,
		MaxWavelength: 30,
		Points:        2000,
		Line:          synth.Feature{Center: 17.22, Amplitude: 0.3, Sigma: 0.05},
	}

	wavelength, flux, err := s.Synthesize()
	if err != nil {
		panic(err)
	}

	peak := grid.NearestIndex(wavelength, 17.22)
	fmt.Printf("samples: %d\n", len(flux))
	fmt.Printf("baseline: %.2f\n", flux[0])
	fmt.Printf("peak: %.2f\n", flux[peak])

	// Output:
	// samples: 2000
	// baseline: 1.00
	// peak: 1.30
}

func ExampleAddGaussian() {
	g := []float64{17.0, 17.1, 17.2, 17.3, 17.4}
	flux := []float64{1, 1, 1, 1, 1}

	out, err := synth.AddGaussian(g, flux, synth.Feature{Center: 17.2, Amplitude: 0.5, Sigma: 0.1})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", out[0], out[1], out[2], out[3], out[4])

	// Output:
	// 1.07 1.30 1.50 1.30 1.07
}
