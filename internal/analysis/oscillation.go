package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// OscillationScale estimates the dominant oscillation period of a
// probability curve sampled uniformly in log10 energy. It returns the period
// in decades, or 0 when no oscillation stands out.
//
// The mean is removed before the FFT so the DC bin does not mask the
// oscillatory structure.
func OscillationScale(paa []float64, logDecades float64) float64 {
	n := len(paa)
	if n < 4 || logDecades <= 0 {
		return 0
	}

	mean := 0.0
	for _, p := range paa {
		mean += p
	}
	mean /= float64(n)

	detrended := make([]float64, n)
	for i, p := range paa {
		detrended[i] = p - mean
	}

	ps := PowerSpectrum(detrended)

	maxPower := 0.0
	maxBin := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > maxPower {
			maxPower = ps[k]
			maxBin = k
		}
	}
	if maxBin == 0 {
		return 0
	}

	return logDecades / float64(maxBin)
}

// PowerSpectrum returns the magnitude spectrum of a real signal up to the
// Nyquist bin.
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// LogDecades returns the width of an energy grid in decades.
func LogDecades(energiesGeV []float64) float64 {
	if len(energiesGeV) < 2 {
		return 0
	}
	lo := energiesGeV[0]
	hi := energiesGeV[len(energiesGeV)-1]
	if lo <= 0 || hi <= lo {
		return 0
	}
	return math.Log10(hi / lo)
}
