package mixing

import (
	"context"
	"fmt"
	"sync"

	"github.com/astroloom/alpmix/internal/alp"
	"github.com/astroloom/alpmix/internal/beam"
	"github.com/astroloom/alpmix/internal/environ"
)

// minimum energies per goroutine chunk
const minChunk = 16

// Solver runs a mixing calculation for one particle through an ordered list
// of propagation environments.
type Solver struct {
	// Rho0 is the initial polarization density matrix. New sets it to an
	// unpolarized photon beam.
	Rho0 beam.Density

	// QED enables the vacuum birefringence term.
	QED bool

	particle alp.ALP
	modules  []environ.Module
}

func New(particle alp.ALP, modules ...environ.Module) *Solver {
	return &Solver{
		Rho0:     beam.UnpolarizedPhoton(),
		particle: particle,
		modules:  modules,
	}
}

// Result holds the conversion probabilities over an energy grid.
type Result struct {
	EnergiesGeV []float64
	Pgx         []float64 // photon survival into x polarization
	Pgy         []float64 // photon survival into y polarization
	Paa         []float64 // photon-ALP conversion
}

// Pgg returns the total photon survival probability per energy.
func (r *Result) Pgg() []float64 {
	out := make([]float64, len(r.Pgx))
	for i := range out {
		out[i] = r.Pgx[i] + r.Pgy[i]
	}
	return out
}

// Run computes the three probabilities for every energy on the grid. The
// energy grid is chunked across goroutines; cancellation via ctx aborts the
// remaining work and returns an error wrapping ErrCanceled.
func (s *Solver) Run(ctx context.Context, energiesGeV []float64) (*Result, error) {
	cells := s.cells()
	if len(cells) == 0 {
		return nil, ErrNoCells
	}
	for i, e := range energiesGeV {
		if e <= 0 {
			return nil, &EnergyError{Index: i, EnergyGeV: e, Wrapped: ErrInvalidEnergy}
		}
	}

	result := &Result{
		EnergiesGeV: append([]float64(nil), energiesGeV...),
		Pgx:         make([]float64, len(energiesGeV)),
		Pgy:         make([]float64, len(energiesGeV)),
		Paa:         make([]float64, len(energiesGeV)),
	}

	var mu sync.Mutex
	var firstErr error
	record := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	ParallelFor(len(energiesGeV), minChunk, func(start, end int) {
		for i := start; i < end; i++ {
			select {
			case <-ctx.Done():
				record(fmt.Errorf("%w: %v", ErrCanceled, ctx.Err()))
				return
			default:
			}

			t := beam.Identity()
			for _, c := range cells {
				t = Transfer(Compute(s.particle, c, energiesGeV[i], s.QED), c).Mul(t)
			}
			if !t.IsValid() {
				record(&EnergyError{Index: i, EnergyGeV: energiesGeV[i], Wrapped: ErrInvalidState})
				return
			}

			rho := s.Rho0.Evolve(t)
			result.Pgx[i] = rho.Prob(beam.ProjX)
			result.Pgy[i] = rho.Prob(beam.ProjY)
			result.Paa[i] = rho.Prob(beam.ProjALP)
		}
	})

	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

func (s *Solver) cells() []environ.Cell {
	var cells []environ.Cell
	for _, m := range s.modules {
		cells = append(cells, m.Cells()...)
	}
	return cells
}
