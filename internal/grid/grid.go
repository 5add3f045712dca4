// Package grid builds the energy grids a mixing calculation is evaluated on.
package grid

import "math"

// LogSpace returns n points logarithmically spaced from lo to hi inclusive.
// Both bounds must be positive.
func LogSpace(lo, hi float64, n int) []float64 {
	if n <= 0 || lo <= 0 || hi <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}

	llo := math.Log10(lo)
	lhi := math.Log10(hi)
	step := (lhi - llo) / float64(n-1)

	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, llo+float64(i)*step)
	}
	// Pin the endpoints against accumulated rounding.
	out[0] = lo
	out[n-1] = hi
	return out
}

// LinSpace returns n points linearly spaced from lo to hi inclusive.
func LinSpace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}

	step := (hi - lo) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
