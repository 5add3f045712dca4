package mixing

import (
	"context"
	"sync"

	"github.com/astroloom/alpmix/internal/alp"
	"github.com/astroloom/alpmix/internal/beam"
	"github.com/astroloom/alpmix/internal/environ"
)

// Ensemble runs the same mixing calculation over several realizations of a
// random field environment.
type Ensemble struct {
	Rho0 beam.Density
	QED  bool

	particle  alp.ALP
	env       environ.Realizer
	runs      int
	seedStart int64
}

func NewEnsemble(particle alp.ALP, env environ.Realizer, runs int, seedStart int64) *Ensemble {
	return &Ensemble{
		Rho0:      beam.UnpolarizedPhoton(),
		particle:  particle,
		env:       env,
		runs:      runs,
		seedStart: seedStart,
	}
}

// EnsembleResult holds per-energy envelope statistics over the realizations.
type EnsembleResult struct {
	EnergiesGeV []float64
	MeanPaa     []float64
	MinPaa      []float64
	MaxPaa      []float64
	MeanPgg     []float64
	Runs        int
}

// Run realizes the environment sequentially (Realize mutates it), freezes
// each cell list, and solves the realizations concurrently.
func (e *Ensemble) Run(ctx context.Context, energiesGeV []float64) (*EnsembleResult, error) {
	if e.runs < 1 {
		return nil, ErrNoRuns
	}

	results := make([]*Result, e.runs)
	errs := make([]error, e.runs)

	var wg sync.WaitGroup
	for i := 0; i < e.runs; i++ {
		frozen := environ.Static(e.env.Name(), e.env.Realize(e.seedStart+int64(i)))

		wg.Add(1)
		go func(idx int, m environ.Module) {
			defer wg.Done()

			s := New(e.particle, m)
			s.Rho0 = e.Rho0
			s.QED = e.QED
			results[idx], errs[idx] = s.Run(ctx, energiesGeV)
		}(i, frozen)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := &EnsembleResult{
		EnergiesGeV: append([]float64(nil), energiesGeV...),
		MeanPaa:     make([]float64, len(energiesGeV)),
		MinPaa:      make([]float64, len(energiesGeV)),
		MaxPaa:      make([]float64, len(energiesGeV)),
		MeanPgg:     make([]float64, len(energiesGeV)),
		Runs:        e.runs,
	}

	for i := range energiesGeV {
		minP, maxP := results[0].Paa[i], results[0].Paa[i]
		sumPaa, sumPgg := 0.0, 0.0
		for _, r := range results {
			p := r.Paa[i]
			sumPaa += p
			sumPgg += r.Pgx[i] + r.Pgy[i]
			if p < minP {
				minP = p
			}
			if p > maxP {
				maxP = p
			}
		}
		out.MeanPaa[i] = sumPaa / float64(e.runs)
		out.MeanPgg[i] = sumPgg / float64(e.runs)
		out.MinPaa[i] = minP
		out.MaxPaa[i] = maxP
	}
	return out, nil
}
