package environ

import (
	"math"
	"math/rand"
)

// CellICM models the turbulent intra-cluster medium as NCells equal-length
// domains out to RadiusKpc. The electron density follows a beta profile
//
//	n(r) = N0 (1 + r^2/r_c^2)^(-3 beta / 2)
//
// and the field strength traces the density, B(r) = B0 (n(r)/N0)^Eta. Each
// cell's field orientation is drawn uniformly from [0, 2pi); SigmaB adds an
// optional Gaussian scatter to the field strength.
type CellICM struct {
	B0MuG     float64
	RadiusKpc float64
	NCells    int
	N0Cm3     float64
	RCoreKpc  float64
	Beta      float64
	Eta       float64
	SigmaB    float64 // fractional scatter of |B|, 0 disables
	GammaKpc  float64
	Seed      int64

	cells []Cell
}

// NewCellICM returns an ICM environment with Perseus-like defaults.
func NewCellICM(seed int64) *CellICM {
	return &CellICM{
		B0MuG:     10.0,
		RadiusKpc: 500.0,
		NCells:    100,
		N0Cm3:     3.9e-2,
		RCoreKpc:  80.0,
		Beta:      1.2,
		Eta:       0.5,
		Seed:      seed,
	}
}

func (m *CellICM) Name() string { return "icm" }

// DensityCm3 evaluates the beta profile at radius r.
func (m *CellICM) DensityCm3(rKpc float64) float64 {
	x := rKpc / m.RCoreKpc
	return m.N0Cm3 * math.Pow(1+x*x, -1.5*m.Beta)
}

// Realize regenerates the cell list from the given seed and stores the seed
// for subsequent Cells calls.
func (m *CellICM) Realize(seed int64) []Cell {
	m.Seed = seed
	m.cells = m.generate()
	return m.cells
}

func (m *CellICM) Cells() []Cell {
	if m.cells == nil {
		m.cells = m.generate()
	}
	return m.cells
}

func (m *CellICM) generate() []Cell {
	rng := rand.New(rand.NewSource(m.Seed))
	length := m.RadiusKpc / float64(m.NCells)

	cells := make([]Cell, m.NCells)
	for i := range cells {
		rMid := (float64(i) + 0.5) * length
		nel := m.DensityCm3(rMid)

		b := m.B0MuG * math.Pow(nel/m.N0Cm3, m.Eta)
		if m.SigmaB > 0 {
			b *= 1 + m.SigmaB*rng.NormFloat64()
			if b < 0 {
				b = 0
			}
		}

		cells[i] = Cell{
			LengthKpc: length,
			BMuG:      b,
			PsiRad:    rng.Float64() * 2 * math.Pi,
			NelCm3:    nel,
			GammaKpc:  m.GammaKpc,
		}
	}
	return cells
}
