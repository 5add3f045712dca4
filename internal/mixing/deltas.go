package mixing

import (
	"math"

	"github.com/astroloom/alpmix/internal/alp"
	"github.com/astroloom/alpmix/internal/environ"
)

// Deltas holds the oscillation wavenumbers of one cell at one photon energy,
// all in kpc^-1.
type Deltas struct {
	Ag   float64 // photon-ALP mixing, g B_T / 2
	A    float64 // ALP mass term, -m^2/(2E)
	Pl   float64 // plasma term, -omega_pl^2/(2E)
	Par  float64 // parallel photon component
	Perp float64 // perpendicular photon component
}

// Compute evaluates the wavenumbers for particle a traversing cell c at
// observed energy eGeV. The cell's redshift factor rescales the energy. The
// QED birefringence term only matters at very strong fields and is optional.
func Compute(a alp.ALP, c environ.Cell, eGeV float64, qed bool) Deltas {
	e := eGeV * c.EnergyScale()

	d := Deltas{
		Ag: alp.DeltaAgPrefactor * a.G11 * c.BMuG,
		A:  alp.DeltaAPrefactor * a.MassNeV * a.MassNeV / e,
		Pl: alp.DeltaPlPrefactor * c.NelCm3 / e,
	}
	d.Par = d.Pl
	d.Perp = d.Pl

	if qed {
		q := alp.DeltaQEDPrefactor * e * c.BMuG * c.BMuG
		d.Par += 3.5 * q
		d.Perp += 2.0 * q
	}
	return d
}

// OscillationKpc returns the oscillation wavenumber
// sqrt((Delta_par - Delta_a)^2 + 4 Delta_ag^2).
func (d Deltas) OscillationKpc() float64 {
	return math.Hypot(d.Par-d.A, 2*d.Ag)
}

// MixingAngle returns the photon-ALP mixing angle alpha.
func (d Deltas) MixingAngle() float64 {
	return 0.5 * math.Atan2(2*d.Ag, d.Par-d.A)
}
