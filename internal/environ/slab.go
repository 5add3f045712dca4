package environ

// Slab is a single homogeneous magnetized domain.
type Slab struct {
	BMuG      float64
	PsiRad    float64
	NelCm3    float64
	LengthKpc float64
	GammaKpc  float64
}

func NewSlab(bMuG, psiRad, nelCm3, lengthKpc float64) *Slab {
	return &Slab{BMuG: bMuG, PsiRad: psiRad, NelCm3: nelCm3, LengthKpc: lengthKpc}
}

func (s *Slab) Name() string { return "slab" }

func (s *Slab) Cells() []Cell {
	return []Cell{{
		LengthKpc: s.LengthKpc,
		BMuG:      s.BMuG,
		PsiRad:    s.PsiRad,
		NelCm3:    s.NelCm3,
		GammaKpc:  s.GammaKpc,
	}}
}
