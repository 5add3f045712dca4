// Package environ models the magnetized media a photon-ALP beam propagates
// through as ordered lists of homogeneous field cells.
//
// Three environments are provided:
//
//   - [Slab]: a single homogeneous domain, the textbook configuration
//   - [CellICM]: intra-cluster medium with a beta-profile electron density
//     and randomly oriented field cells
//   - [CellIGM]: intergalactic medium with redshift-scaled field, density
//     and cell length
//
// Random environments are seeded; the same seed always produces the same
// cell list, so runs are reproducible.
package environ
