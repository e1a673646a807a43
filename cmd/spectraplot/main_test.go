package main

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-spectra/spectral/grid"
	"github.com/cwbudde/algo-spectra/spectral/synth"
)

func defaultSynthesizer() *synth.Synthesizer {
	return &synth.Synthesizer{
		MinWavelength:  10,
		MaxWavelength:  30,
		Points:         500,
		ContinuumSlope: 0.02,
		ContinuumPivot: 20,
		Line:           synth.Feature{Center: 17.22, Amplitude: 0.3, Sigma: 0.15},
		NoiseSigma:     0.02,
		Rand:           rand.New(rand.NewSource(12345)),
	}
}

func TestRunWritesOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "water_line_spectrum.png")

	if err := run(defaultSynthesizer(), 0, path); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	if info.Size() == 0 {
		t.Fatal("output file is empty")
	}
}

func TestRunWithBroadening(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broadened.png")

	if err := run(defaultSynthesizer(), 300, path); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
}

func TestRunInvalidPointCountWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	s := defaultSynthesizer()
	s.Points = 1

	err := run(s, 0, path)
	if err == nil {
		t.Fatal("run() with one point succeeded, want error")
	}

	if !errors.Is(err, grid.ErrInvalidPointCount) {
		t.Fatalf("error = %v, want %v", err, grid.ErrInvalidPointCount)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	if len(entries) != 0 {
		t.Fatalf("unexpected output files: %v", entries)
	}
}
