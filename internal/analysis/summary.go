// Package analysis extracts summary quantities from computed mixing spectra.
package analysis

import "github.com/astroloom/alpmix/internal/mixing"

// Summary condenses a conversion-probability spectrum.
type Summary struct {
	MeanPaa        float64
	MaxPaa         float64
	EnergyAtMaxGeV float64
	MinPgg         float64
}

func Summarize(r *mixing.Result) Summary {
	if len(r.EnergiesGeV) == 0 {
		return Summary{}
	}

	s := Summary{MinPgg: 1}
	sum := 0.0
	pgg := r.Pgg()

	for i, p := range r.Paa {
		sum += p
		if p > s.MaxPaa {
			s.MaxPaa = p
			s.EnergyAtMaxGeV = r.EnergiesGeV[i]
		}
		if pgg[i] < s.MinPgg {
			s.MinPgg = pgg[i]
		}
	}
	s.MeanPaa = sum / float64(len(r.Paa))
	return s
}

// Metrics flattens a summary into the name/value map the run store persists.
func (s Summary) Metrics() map[string]float64 {
	return map[string]float64{
		"mean_paa":      s.MeanPaa,
		"max_paa":       s.MaxPaa,
		"energy_at_max": s.EnergyAtMaxGeV,
		"min_pgg":       s.MinPgg,
	}
}

// CriticalEnergyGeV locates the onset of strong mixing: the first grid energy
// where the conversion probability reaches half its maximum. Returns 0 when
// the spectrum is flat zero.
func CriticalEnergyGeV(r *mixing.Result) float64 {
	max := 0.0
	for _, p := range r.Paa {
		if p > max {
			max = p
		}
	}
	if max == 0 {
		return 0
	}

	threshold := 0.5 * max
	for i, p := range r.Paa {
		if p >= threshold {
			return r.EnergiesGeV[i]
		}
	}
	return 0
}
