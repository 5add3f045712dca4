// Package beam provides the linear algebra of a photon-ALP beam.
//
// The beam is a three-state system: the two transverse photon polarizations
// A_x and A_y and the ALP amplitude a. The package defines:
//
//   - [Vec]: complex amplitude vector (A_x, A_y, a)
//   - [Matrix]: dense 3x3 complex matrix, used for per-domain transfer
//     matrices and their composition along a propagation path
//   - [Density]: polarization density matrix, evolved as rho' = T rho T^dagger
//
// Probabilities are extracted by projecting the evolved density matrix onto
// [ProjX], [ProjY] or [ProjALP]. Without absorption the transfer matrices are
// unitary and the three probabilities sum to one.
package beam
