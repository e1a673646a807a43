package broaden

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-spectra/spectral/synth"
)

func BenchmarkBroaden(b *testing.B) {
	sizes := []int{500, 2000, 8192}
	for _, n := range sizes {
		s := &synth.Synthesizer{
			MinWavelength: 10,
			MaxWavelength: 30,
			Points:        n,
			Line:          synth.Feature{Center: 17.22, Amplitude: 0.3, Sigma: 0.15},
		}

		g, flux, err := s.Synthesize()
		if err != nil {
			b.Fatal(err)
		}

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if _, err := Broaden(g, flux, 300); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkKernel(b *testing.B) {
	for _, sigma := range []float64{1, 4, 16} {
		b.Run(strconv.FormatFloat(sigma, 'f', 0, 64), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				if _, err := Kernel(sigma); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
