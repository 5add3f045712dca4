package alp

import (
	"fmt"
	"math"
)

// ALP holds the axion-like-particle parameters of a mixing calculation.
type ALP struct {
	MassNeV float64 // mass in 1e-9 eV
	G11     float64 // photon coupling in 1e-11 GeV^-1
}

func New(massNeV, g11 float64) (ALP, error) {
	if massNeV < 0 {
		return ALP{}, fmt.Errorf("alp: mass must be non-negative, got %g", massNeV)
	}
	if g11 < 0 {
		return ALP{}, fmt.Errorf("alp: coupling must be non-negative, got %g", g11)
	}
	return ALP{MassNeV: massNeV, G11: g11}, nil
}

// CriticalEnergyGeV returns the energy above which photon-ALP mixing becomes
// maximal in a medium with electron density nel (cm^-3) and transverse field
// B (muG). Below it the mass (or plasma) term suppresses the mixing angle.
func (a ALP) CriticalEnergyGeV(nelCm3, bMuG float64) float64 {
	if a.G11 == 0 || bMuG == 0 {
		return math.Inf(1)
	}
	massTerm := math.Abs(a.MassNeV*a.MassNeV - PlasmaFreqNeV2PerCm3*nelCm3)
	return math.Abs(DeltaAPrefactor) * massTerm / (2 * DeltaAgPrefactor * a.G11 * bMuG)
}

// Source locates the gamma-ray source whose beam propagates to the observer.
type Source struct {
	Z      float64 // redshift
	GalLon float64 // galactic longitude, degrees
	GalLat float64 // galactic latitude, degrees
}

func NewSource(z, lon, lat float64) (Source, error) {
	if z < 0 {
		return Source{}, fmt.Errorf("alp: redshift must be non-negative, got %g", z)
	}
	if lat < -90 || lat > 90 {
		return Source{}, fmt.Errorf("alp: galactic latitude out of range: %g", lat)
	}
	return Source{Z: z, GalLon: math.Mod(lon, 360), GalLat: lat}, nil
}
