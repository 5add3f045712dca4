package mixing

import (
	"math"

	"github.com/astroloom/alpmix/internal/alp"
	"github.com/astroloom/alpmix/internal/environ"
)

// SingleDomainProbability returns the analytic photon-ALP conversion
// probability for one homogeneous cell without absorption,
//
//	P = sin^2(2 alpha) sin^2(Delta_osc L / 2),
//
// valid for a beam polarized along the transverse field.
func SingleDomainProbability(a alp.ALP, c environ.Cell, eGeV float64, qed bool) float64 {
	d := Compute(a, c, eGeV, qed)
	osc := d.OscillationKpc()
	if osc == 0 {
		return 0
	}
	sin2a := 2 * d.Ag / osc
	s := math.Sin(0.5 * osc * c.LengthKpc)
	return sin2a * sin2a * s * s
}
