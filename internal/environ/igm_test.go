package environ

import (
	"math"
	"testing"
)

func TestIGMCellCountAndOrder(t *testing.T) {
	m := NewCellIGM(0.2, 11)
	cells := m.Cells()

	if len(cells) != m.NCells {
		t.Fatalf("expected %d cells, got %d", m.NCells, len(cells))
	}

	// Source to observer means decreasing redshift, so decreasing field.
	if cells[0].BMuG <= cells[len(cells)-1].BMuG {
		t.Error("expected field to decrease toward the observer")
	}
	if cells[0].EnergyScale() <= cells[len(cells)-1].EnergyScale() {
		t.Error("expected energy scale to decrease toward the observer")
	}
}

func TestIGMRedshiftScalings(t *testing.T) {
	m := NewCellIGM(0.5, 0)
	m.NCells = 10

	for i, c := range m.Cells() {
		zp := c.EnergyScale()
		wantB := m.B0NanoG * 1e-3 * zp * zp
		wantN := m.N0Cm3 * zp * zp * zp
		if math.Abs(c.BMuG-wantB)/wantB > 1e-9 {
			t.Fatalf("cell %d field scaling wrong: %g vs %g", i, c.BMuG, wantB)
		}
		if math.Abs(c.NelCm3-wantN)/wantN > 1e-9 {
			t.Fatalf("cell %d density scaling wrong: %g vs %g", i, c.NelCm3, wantN)
		}
	}
}

func TestIGMPathLength(t *testing.T) {
	m := NewCellIGM(0.1, 0)
	cells := m.Cells()

	total := 0.0
	for _, c := range cells {
		total += c.LengthKpc
	}

	// Proper path is bounded by the comoving distance but of the same order.
	dc := m.Cosmo.ComovingDistanceKpc(0.1)
	if total >= dc || total < dc/(1+0.1) {
		t.Errorf("proper path %g outside (%g, %g)", total, dc/1.1, dc)
	}
}

func TestIGMAbsorptionSpread(t *testing.T) {
	m := NewCellIGM(0.2, 5)
	m.TauTotal = 2.0

	tau := 0.0
	for _, c := range m.Cells() {
		tau += c.GammaKpc * c.LengthKpc
	}
	if math.Abs(tau-2.0) > 1e-9 {
		t.Errorf("total optical depth %g, want 2", tau)
	}
}

func TestIGMZeroRedshift(t *testing.T) {
	m := NewCellIGM(0, 0)
	if cells := m.Cells(); cells != nil {
		t.Errorf("expected no cells at z=0, got %d", len(cells))
	}
}
