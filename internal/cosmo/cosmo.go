// Package cosmo provides the flat Lambda-CDM distances needed by
// redshift-dependent propagation environments.
package cosmo

import "math"

const speedOfLightKmS = 299792.458

// Cosmology holds the parameters of a flat Lambda-CDM model.
type Cosmology struct {
	H0     float64 // Hubble constant, km/s/Mpc
	OmegaM float64 // matter density
	OmegaL float64 // dark energy density
}

// Default returns a Planck-like cosmology.
func Default() Cosmology {
	return Cosmology{H0: 70.0, OmegaM: 0.3, OmegaL: 0.7}
}

// HubbleKpc returns the Hubble distance c/H0 in kpc.
func (c Cosmology) HubbleKpc() float64 {
	return speedOfLightKmS / c.H0 * 1e3
}

// efunc is the dimensionless Hubble rate E(z) = H(z)/H0.
func (c Cosmology) efunc(z float64) float64 {
	zp := 1 + z
	return math.Sqrt(c.OmegaM*zp*zp*zp + c.OmegaL)
}

// ComovingDistanceKpc integrates c/H0 * dz/E(z) from 0 to z with composite
// Simpson quadrature.
func (c Cosmology) ComovingDistanceKpc(z float64) float64 {
	if z <= 0 {
		return 0
	}

	const steps = 512 // even
	h := z / steps

	sum := 1/c.efunc(0) + 1/c.efunc(z)
	for i := 1; i < steps; i++ {
		w := 2.0
		if i%2 == 1 {
			w = 4.0
		}
		sum += w / c.efunc(float64(i)*h)
	}

	return c.HubbleKpc() * sum * h / 3
}

// LuminosityDistanceKpc returns (1+z) times the comoving distance.
func (c Cosmology) LuminosityDistanceKpc(z float64) float64 {
	return (1 + z) * c.ComovingDistanceKpc(z)
}
