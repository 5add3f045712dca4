package alp

// Oscillation wavenumber prefactors in kpc^-1 for the unit conventions used
// throughout: photon energy in GeV, magnetic field in muG, electron density
// in cm^-3, ALP mass in neV, coupling in 1e-11 GeV^-1.
const (
	// DeltaAgPrefactor scales the photon-ALP mixing term g*B/2.
	DeltaAgPrefactor = 1.52e-2

	// DeltaAPrefactor scales the ALP mass term -m^2/(2E).
	DeltaAPrefactor = -7.8e-2

	// DeltaPlPrefactor scales the plasma term -omega_pl^2/(2E).
	DeltaPlPrefactor = -1.1e-4

	// DeltaQEDPrefactor scales the vacuum birefringence term.
	DeltaQEDPrefactor = 4.1e-9

	// PlasmaFreqNeV2PerCm3 converts electron density in cm^-3 to the
	// squared plasma frequency in neV^2.
	PlasmaFreqNeV2PerCm3 = 1.38e-3
)
