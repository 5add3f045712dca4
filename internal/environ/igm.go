package environ

import (
	"math"
	"math/rand"

	"github.com/astroloom/alpmix/internal/cosmo"
)

// CellIGM models the intergalactic medium between a source at redshift Z and
// the observer. The comoving path is split into NCells slices; within each
// slice the field, density and photon energy carry their mid-redshift
// scalings: B ~ (1+z)^2, n ~ (1+z)^3, E ~ (1+z). TauTotal spreads an optional
// total absorption optical depth uniformly over the path.
type CellIGM struct {
	B0NanoG  float64 // comoving field strength, nG
	N0Cm3    float64 // comoving electron density, cm^-3
	Z        float64 // source redshift
	NCells   int
	TauTotal float64
	Cosmo    cosmo.Cosmology
	Seed     int64

	cells []Cell
}

// NewCellIGM returns an IGM environment with typical upper-limit field values.
func NewCellIGM(z float64, seed int64) *CellIGM {
	return &CellIGM{
		B0NanoG: 1.0,
		N0Cm3:   1e-7,
		Z:       z,
		NCells:  50,
		Cosmo:   cosmo.Default(),
		Seed:    seed,
	}
}

func (m *CellIGM) Name() string { return "igm" }

// Realize regenerates the cell list from the given seed.
func (m *CellIGM) Realize(seed int64) []Cell {
	m.Seed = seed
	m.cells = m.generate()
	return m.cells
}

func (m *CellIGM) Cells() []Cell {
	if m.cells == nil {
		m.cells = m.generate()
	}
	return m.cells
}

func (m *CellIGM) generate() []Cell {
	if m.Z <= 0 || m.NCells <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(m.Seed))
	dz := m.Z / float64(m.NCells)
	totalPath := 0.0

	// Cells are ordered source to observer: high z first.
	cells := make([]Cell, m.NCells)
	for i := range cells {
		zHi := m.Z - float64(i)*dz
		zLo := zHi - dz
		zMid := 0.5 * (zHi + zLo)
		zp := 1 + zMid

		// Proper length of the slice.
		length := (m.Cosmo.ComovingDistanceKpc(zHi) - m.Cosmo.ComovingDistanceKpc(zLo)) / zp
		totalPath += length

		cells[i] = Cell{
			LengthKpc: length,
			BMuG:      m.B0NanoG * 1e-3 * zp * zp,
			PsiRad:    rng.Float64() * 2 * math.Pi,
			NelCm3:    m.N0Cm3 * zp * zp * zp,
			EScale:    zp,
		}
	}

	if m.TauTotal > 0 && totalPath > 0 {
		gamma := m.TauTotal / totalPath
		for i := range cells {
			cells[i].GammaKpc = gamma
		}
	}
	return cells
}
