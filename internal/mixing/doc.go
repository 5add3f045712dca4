// Package mixing solves photon-ALP beam propagation through magnetized media.
//
// For every cell of the traversed environments and every photon energy the
// package evaluates the oscillation wavenumbers ([Compute]), builds the
// per-domain transfer matrix ([Transfer]) and composes the matrices along the
// path. The initial polarization density matrix is then evolved through the
// total transfer matrix and projected onto the photon and ALP states:
//
//	s := mixing.New(particle, env)
//	result, err := s.Run(ctx, grid.LogSpace(0.1, 100, 200))
//
// [Ensemble] repeats the calculation over several realizations of a random
// field environment and reports envelope statistics.
//
// # Thread Safety
//
// Solver instances are safe for a single Run at a time; Run itself fans the
// energy grid out over goroutines. Ensemble realizes environments
// sequentially and only runs the frozen cell lists concurrently.
package mixing
