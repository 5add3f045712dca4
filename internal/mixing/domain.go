package mixing

import (
	"math/cmplx"

	"github.com/astroloom/alpmix/internal/beam"
	"github.com/astroloom/alpmix/internal/environ"
)

// sinc is sin(z)/z with the limit value 1 at z = 0.
func sinc(z complex128) complex128 {
	if z == 0 {
		return 1
	}
	return cmplx.Sin(z) / z
}

// Transfer builds the transfer matrix of a single homogeneous cell from its
// wavenumbers.
//
// In the frame where the transverse field lies along y the perpendicular
// polarization decouples and the (A_y, a) block is a symmetric 2x2 matrix
// whose exponential follows from its eigenvalues (Delta_par + Delta_a)/2 +-
// Delta_osc/2. Absorption enters as +i Gamma/2 on both photon components,
// which makes the matrix non-unitary. The result is rotated into the lab
// frame by the cell's field orientation.
func Transfer(d Deltas, c environ.Cell) beam.Matrix {
	l := complex(c.LengthKpc, 0)
	absorb := complex(0, 0.5*c.GammaKpc)

	dPerp := complex(d.Perp, 0) + absorb
	dPar := complex(d.Par, 0) + absorb
	dA := complex(d.A, 0)
	dAg := complex(d.Ag, 0)

	mean := 0.5 * (dPar + dA)
	half := cmplx.Sqrt(0.25*(dPar-dA)*(dPar-dA) + dAg*dAg)

	phase := cmplx.Exp(1i * mean * l)
	cosz := cmplx.Cos(half * l)
	snc := sinc(half * l)

	var t beam.Matrix
	t[0][0] = cmplx.Exp(1i * dPerp * l)
	t[1][1] = phase * (cosz + 1i*l*snc*(dPar-mean))
	t[1][2] = phase * 1i * l * snc * dAg
	t[2][1] = t[1][2]
	t[2][2] = phase * (cosz + 1i*l*snc*(dA-mean))

	r := beam.Rotation(c.PsiRad)
	return r.Mul(t).Mul(beam.Rotation(-c.PsiRad))
}
