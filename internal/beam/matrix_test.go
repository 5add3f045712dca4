package beam

import (
	"math"
	"math/cmplx"
	"testing"
)

func matApproxEqual(a, b Matrix, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if cmplx.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func TestRotationUnitary(t *testing.T) {
	r := Rotation(0.73)
	if !matApproxEqual(r.Mul(r.Dagger()), Identity(), 1e-12) {
		t.Error("rotation times its dagger is not identity")
	}
}

func TestRotationInverse(t *testing.T) {
	r := Rotation(1.2)
	rInv := Rotation(-1.2)
	if !matApproxEqual(r.Mul(rInv), Identity(), 1e-12) {
		t.Error("R(psi) R(-psi) is not identity")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Matrix{
		{1 + 2i, 3, 0},
		{0, 5i, 1},
		{2, 0, -1i},
	}
	if m.Mul(Identity()) != m || Identity().Mul(m) != m {
		t.Error("identity multiplication changed matrix")
	}
}

func TestDaggerInvolution(t *testing.T) {
	m := Matrix{
		{1 + 2i, 3 - 1i, 0},
		{4, 5i, 1 + 1i},
		{2i, 0, -1i},
	}
	if m.Dagger().Dagger() != m {
		t.Error("double dagger is not identity operation")
	}
}

func TestTrace(t *testing.T) {
	m := Matrix{
		{1, 9, 9},
		{9, 2i, 9},
		{9, 9, 3},
	}
	if m.Trace() != 4+2i {
		t.Errorf("trace wrong: %v", m.Trace())
	}
}

func TestPureDensityTrace(t *testing.T) {
	d := PhotonPol(0.4)
	if math.Abs(real(Matrix(d).Trace())-1) > 1e-12 {
		t.Errorf("pure state trace not 1: %v", Matrix(d).Trace())
	}
}

func TestUnpolarizedProbabilities(t *testing.T) {
	d := UnpolarizedPhoton()
	if math.Abs(d.Prob(ProjX)-0.5) > 1e-12 || math.Abs(d.Prob(ProjY)-0.5) > 1e-12 {
		t.Error("unpolarized beam should split evenly between x and y")
	}
	if d.Prob(ProjALP) != 0 {
		t.Error("photon beam has nonzero ALP content")
	}
}

func TestEvolveWithRotation(t *testing.T) {
	// Rotating an x-polarized photon by pi/2 turns it into a y-polarized one.
	d := PhotonPol(0)
	d2 := d.Evolve(Rotation(math.Pi / 2))
	if math.Abs(d2.Prob(ProjY)-1) > 1e-12 {
		t.Errorf("expected full y polarization, got %f", d2.Prob(ProjY))
	}
	if math.Abs(d2.Prob(ProjX)) > 1e-12 {
		t.Errorf("expected zero x polarization, got %f", d2.Prob(ProjX))
	}
}

func TestEvolvePreservesTraceUnderUnitary(t *testing.T) {
	d := UnpolarizedPhoton()
	d2 := d.Evolve(Rotation(0.3))
	tr := real(Matrix(d2).Trace())
	if math.Abs(tr-1) > 1e-12 {
		t.Errorf("trace not preserved: %f", tr)
	}
}

func TestVecValidity(t *testing.T) {
	v := Vec{1, 0, 0}
	if !v.IsValid() {
		t.Error("finite vector reported invalid")
	}
	v[1] = complex(math.NaN(), 0)
	if v.IsValid() {
		t.Error("NaN vector reported valid")
	}
}
