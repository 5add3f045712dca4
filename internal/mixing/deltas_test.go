package mixing

import (
	"math"
	"testing"

	"github.com/astroloom/alpmix/internal/alp"
	"github.com/astroloom/alpmix/internal/environ"
)

func TestComputeKnownValues(t *testing.T) {
	a := alp.ALP{MassNeV: 10, G11: 1}
	c := environ.Cell{BMuG: 1, NelCm3: 1e-3, LengthKpc: 1}

	d := Compute(a, c, 1.0, false)

	if math.Abs(d.Ag-1.52e-2) > 1e-12 {
		t.Errorf("Delta_ag: got %g, want 1.52e-2", d.Ag)
	}
	if math.Abs(d.A-(-7.8)) > 1e-9 {
		t.Errorf("Delta_a: got %g, want -7.8", d.A)
	}
	if math.Abs(d.Pl-(-1.1e-7)) > 1e-15 {
		t.Errorf("Delta_pl: got %g, want -1.1e-7", d.Pl)
	}
	if d.Par != d.Pl || d.Perp != d.Pl {
		t.Error("without QED the photon components equal the plasma term")
	}
}

func TestComputeQEDTerm(t *testing.T) {
	a := alp.ALP{MassNeV: 1, G11: 1}
	c := environ.Cell{BMuG: 10, NelCm3: 1e-3, LengthKpc: 1}

	d := Compute(a, c, 100.0, true)
	q := 4.1e-9 * 100.0 * 100.0

	if math.Abs(d.Par-d.Pl-3.5*q) > 1e-15 {
		t.Errorf("parallel QED term wrong: %g", d.Par-d.Pl)
	}
	if math.Abs(d.Perp-d.Pl-2.0*q) > 1e-15 {
		t.Errorf("perpendicular QED term wrong: %g", d.Perp-d.Pl)
	}
}

func TestComputeEnergyScale(t *testing.T) {
	a := alp.ALP{MassNeV: 10, G11: 1}
	plain := environ.Cell{BMuG: 1, NelCm3: 1e-3}
	shifted := environ.Cell{BMuG: 1, NelCm3: 1e-3, EScale: 2}

	// A cell at redshift factor 2 sees twice the energy.
	d1 := Compute(a, plain, 2.0, false)
	d2 := Compute(a, shifted, 1.0, false)
	if math.Abs(d1.A-d2.A) > 1e-12 {
		t.Errorf("energy scaling mismatch: %g vs %g", d1.A, d2.A)
	}
}

func TestMixingAngleLimits(t *testing.T) {
	// Far above the critical energy the mass term vanishes and alpha -> pi/4.
	d := Deltas{Ag: 1e-2, A: -1e-9, Par: 0, Perp: 0}
	if math.Abs(d.MixingAngle()-math.Pi/4) > 1e-4 {
		t.Errorf("strong mixing angle: got %f, want pi/4", d.MixingAngle())
	}

	// With no coupling there is no mixing.
	d = Deltas{Ag: 0, A: -7.8, Par: 0, Perp: 0}
	if d.MixingAngle() != 0 {
		t.Errorf("expected zero mixing angle, got %f", d.MixingAngle())
	}
}

func TestOscillationWavenumber(t *testing.T) {
	d := Deltas{Ag: 3, A: -4, Par: 0}
	// sqrt(4^2 + 6^2)
	want := math.Sqrt(16 + 36)
	if math.Abs(d.OscillationKpc()-want) > 1e-12 {
		t.Errorf("oscillation wavenumber: got %g, want %g", d.OscillationKpc(), want)
	}
}
