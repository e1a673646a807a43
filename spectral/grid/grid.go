package grid

import (
	"errors"
	"math"
	"sort"
)

// Errors returned by grid construction.
var (
	ErrInvalidRange      = errors.New("grid: wavelength range must be positive, finite, and ascending")
	ErrInvalidPointCount = errors.New("grid: point count must be >= 2")
)

// Linspace returns a uniformly spaced wavelength grid with points samples,
// inclusive of both endpoints. The last sample is set to max exactly so that
// accumulated rounding never shortens the covered range.
func Linspace(min, max float64, points int) ([]float64, error) {
	if points < 2 {
		return nil, ErrInvalidPointCount
	}

	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, ErrInvalidRange
	}

	if min <= 0 || min >= max {
		return nil, ErrInvalidRange
	}

	out := make([]float64, points)
	step := (max - min) / float64(points-1)

	for i := range out {
		out[i] = min + float64(i)*step
	}

	out[points-1] = max

	return out, nil
}

// Spacing returns the mean sample spacing of g, or 0 for fewer than 2 samples.
func Spacing(g []float64) float64 {
	if len(g) < 2 {
		return 0
	}

	return (g[len(g)-1] - g[0]) / float64(len(g)-1)
}

// NearestIndex returns the index of the sample in g closest to w.
// g must be sorted ascending. Returns -1 for an empty grid.
func NearestIndex(g []float64, w float64) int {
	if len(g) == 0 {
		return -1
	}

	i := sort.SearchFloat64s(g, w)
	if i == 0 {
		return 0
	}

	if i == len(g) {
		return len(g) - 1
	}

	if w-g[i-1] <= g[i]-w {
		return i - 1
	}

	return i
}
