package mixing

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/astroloom/alpmix/internal/alp"
	"github.com/astroloom/alpmix/internal/beam"
	"github.com/astroloom/alpmix/internal/environ"
	"github.com/astroloom/alpmix/internal/grid"
)

func TestSolverProbabilitySum(t *testing.T) {
	a := alp.ALP{MassNeV: 10, G11: 2}
	env := environ.NewCellICM(42)
	env.NCells = 30

	s := New(a, env)
	result, err := s.Run(context.Background(), grid.LogSpace(0.1, 100, 50))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i := range result.EnergiesGeV {
		sum := result.Pgx[i] + result.Pgy[i] + result.Paa[i]
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("probabilities at E=%g sum to %g", result.EnergiesGeV[i], sum)
		}
		if result.Paa[i] < -1e-12 || result.Paa[i] > 1+1e-12 {
			t.Fatalf("conversion probability out of range: %g", result.Paa[i])
		}
	}
}

func TestSolverMatchesSingleDomainAnalytic(t *testing.T) {
	a := alp.ALP{MassNeV: 1, G11: 5}
	slab := environ.NewSlab(1.0, 0, 1e-3, 100)

	s := New(a, slab)
	s.Rho0 = beam.PhotonPol(math.Pi / 2) // polarized along the field

	energies := grid.LogSpace(0.05, 50, 40)
	result, err := s.Run(context.Background(), energies)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i, e := range energies {
		want := SingleDomainProbability(a, slab.Cells()[0], e, false)
		if math.Abs(result.Paa[i]-want) > 1e-9 {
			t.Errorf("E=%g: Paa=%g, analytic %g", e, result.Paa[i], want)
		}
	}
}

func TestSolverZeroCoupling(t *testing.T) {
	a := alp.ALP{MassNeV: 10, G11: 0}
	env := environ.NewCellICM(7)

	result, err := New(a, env).Run(context.Background(), grid.LogSpace(0.1, 10, 20))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for i, p := range result.Paa {
		if p != 0 {
			t.Fatalf("expected exactly zero conversion at index %d, got %g", i, p)
		}
	}
}

func TestSolverMultipleModulesCompose(t *testing.T) {
	a := alp.ALP{MassNeV: 1, G11: 2}
	s1 := environ.NewSlab(1, 0.3, 1e-3, 25)
	s2 := environ.NewSlab(1, 0.3, 1e-3, 25)
	joined := environ.NewSlab(1, 0.3, 1e-3, 50)

	energies := []float64{1.0, 5.0}
	split, err := New(a, s1, s2).Run(context.Background(), energies)
	if err != nil {
		t.Fatal(err)
	}
	whole, err := New(a, joined).Run(context.Background(), energies)
	if err != nil {
		t.Fatal(err)
	}

	// Two identical half-slabs must equal one full slab.
	for i := range energies {
		if math.Abs(split.Paa[i]-whole.Paa[i]) > 1e-9 {
			t.Errorf("E=%g: split %g, whole %g", energies[i], split.Paa[i], whole.Paa[i])
		}
	}
}

func TestSolverNoCells(t *testing.T) {
	a := alp.ALP{MassNeV: 1, G11: 1}
	_, err := New(a).Run(context.Background(), []float64{1})
	if !errors.Is(err, ErrNoCells) {
		t.Errorf("expected ErrNoCells, got %v", err)
	}
}

func TestSolverInvalidEnergy(t *testing.T) {
	a := alp.ALP{MassNeV: 1, G11: 1}
	s := New(a, environ.NewSlab(1, 0, 1e-3, 10))

	_, err := s.Run(context.Background(), []float64{1, -2, 3})
	if !errors.Is(err, ErrInvalidEnergy) {
		t.Fatalf("expected ErrInvalidEnergy, got %v", err)
	}
	var ee *EnergyError
	if !errors.As(err, &ee) || ee.Index != 1 {
		t.Errorf("expected energy error at index 1, got %v", err)
	}
}

func TestSolverCancellation(t *testing.T) {
	a := alp.ALP{MassNeV: 10, G11: 2}
	env := environ.NewCellICM(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(a, env).Run(ctx, grid.LogSpace(0.1, 100, 200))
	if !errors.Is(err, ErrCanceled) {
		t.Errorf("expected ErrCanceled, got %v", err)
	}
}

func TestSolverAbsorptionReducesSurvival(t *testing.T) {
	a := alp.ALP{MassNeV: 1, G11: 1}
	clean := environ.NewSlab(1, 0.4, 1e-3, 100)
	dimmed := environ.NewSlab(1, 0.4, 1e-3, 100)
	dimmed.GammaKpc = 0.01

	energies := []float64{1.0}
	r1, err := New(a, clean).Run(context.Background(), energies)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := New(a, dimmed).Run(context.Background(), energies)
	if err != nil {
		t.Fatal(err)
	}

	if r2.Pgg()[0] >= r1.Pgg()[0] {
		t.Errorf("absorption did not reduce survival: %g vs %g", r2.Pgg()[0], r1.Pgg()[0])
	}
}

func TestEnsembleEnvelope(t *testing.T) {
	a := alp.ALP{MassNeV: 10, G11: 2}
	env := environ.NewCellICM(0)
	env.NCells = 20

	ens := NewEnsemble(a, env, 5, 100)
	result, err := ens.Run(context.Background(), grid.LogSpace(0.5, 50, 30))
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}

	if result.Runs != 5 {
		t.Errorf("expected 5 runs, got %d", result.Runs)
	}
	for i := range result.EnergiesGeV {
		if result.MinPaa[i] > result.MeanPaa[i] || result.MeanPaa[i] > result.MaxPaa[i] {
			t.Fatalf("envelope out of order at %d: min=%g mean=%g max=%g",
				i, result.MinPaa[i], result.MeanPaa[i], result.MaxPaa[i])
		}
	}
}

func TestEnsembleDeterministic(t *testing.T) {
	a := alp.ALP{MassNeV: 5, G11: 1}
	energies := grid.LogSpace(1, 10, 10)

	run := func() *EnsembleResult {
		env := environ.NewCellICM(0)
		env.NCells = 10
		r, err := NewEnsemble(a, env, 3, 7).Run(context.Background(), energies)
		if err != nil {
			t.Fatalf("ensemble failed: %v", err)
		}
		return r
	}

	r1, r2 := run(), run()
	for i := range energies {
		if r1.MeanPaa[i] != r2.MeanPaa[i] {
			t.Fatalf("same seeds gave different means at %d", i)
		}
	}
}
