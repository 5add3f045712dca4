package beam

import (
	"math"
	"math/cmplx"
)

// Density is a polarization density matrix of the beam.
type Density Matrix

// Projectors onto the three beam states.
var (
	ProjX   = Matrix{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	ProjY   = Matrix{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}
	ProjALP = Matrix{{0, 0, 0}, {0, 0, 0}, {0, 0, 1}}
)

// PhotonPol returns the density matrix of a fully polarized photon beam with
// polarization angle chi measured from the x axis.
func PhotonPol(chi float64) Density {
	v := Vec{complex(math.Cos(chi), 0), complex(math.Sin(chi), 0), 0}
	return Pure(v)
}

// UnpolarizedPhoton returns the density matrix of an unpolarized photon beam.
func UnpolarizedPhoton() Density {
	return Density{
		{0.5, 0, 0},
		{0, 0.5, 0},
		{0, 0, 0},
	}
}

// PureALP returns the density matrix of a pure ALP beam.
func PureALP() Density {
	return Density(ProjALP)
}

// Pure builds the density matrix |v><v| of a pure state.
func Pure(v Vec) Density {
	var d Density
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d[i][j] = v[i] * cmplx.Conj(v[j])
		}
	}
	return d
}

// Evolve applies a transfer matrix: rho' = T rho T^dagger.
func (d Density) Evolve(t Matrix) Density {
	return Density(t.Mul(Matrix(d)).Mul(t.Dagger()))
}

// Prob returns Re Tr(rho P) for a projector P.
func (d Density) Prob(p Matrix) float64 {
	return real(Matrix(d).Mul(p).Trace())
}

func (d Density) IsValid() bool {
	return Matrix(d).IsValid()
}
