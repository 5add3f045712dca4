package environ

// Cell is one homogeneous magnetized plasma slab along the propagation path.
type Cell struct {
	LengthKpc float64 // proper length of the slab
	BMuG      float64 // transverse field strength, muG
	PsiRad    float64 // field orientation in the polarization plane
	NelCm3    float64 // electron density, cm^-3
	GammaKpc  float64 // photon absorption rate, kpc^-1 (0 = none)
	EScale    float64 // energy redshift factor (1+z) at the cell (0 means 1)
}

// EnergyScale returns the factor the observed energy is multiplied by inside
// the cell.
func (c Cell) EnergyScale() float64 {
	if c.EScale == 0 {
		return 1
	}
	return c.EScale
}

// Module is one region of magnetized plasma the beam traverses, discretized
// into cells ordered from the source toward the observer.
type Module interface {
	Name() string
	Cells() []Cell
}

// Realizer is a random environment that can regenerate its cells from a seed.
type Realizer interface {
	Module
	Realize(seed int64) []Cell
}

type staticModule struct {
	name  string
	cells []Cell
}

func (m *staticModule) Name() string  { return m.name }
func (m *staticModule) Cells() []Cell { return m.cells }

// Static wraps a fixed cell list as a Module. The slice is copied.
func Static(name string, cells []Cell) Module {
	return &staticModule{name: name, cells: append([]Cell(nil), cells...)}
}

// TotalLengthKpc sums the cell lengths of a module list.
func TotalLengthKpc(modules []Module) float64 {
	total := 0.0
	for _, m := range modules {
		for _, c := range m.Cells() {
			total += c.LengthKpc
		}
	}
	return total
}
