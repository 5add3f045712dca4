package environ_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/astroloom/alpmix/internal/environ"
)

func TestEnviron(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Environ Suite")
}

var _ = Describe("Slab", func() {
	It("exposes a single cell with its parameters", func() {
		s := environ.NewSlab(1.0, 0.5, 1e-3, 10.0)
		cells := s.Cells()

		Expect(cells).To(HaveLen(1))
		Expect(cells[0].BMuG).To(Equal(1.0))
		Expect(cells[0].PsiRad).To(Equal(0.5))
		Expect(cells[0].NelCm3).To(Equal(1e-3))
		Expect(cells[0].LengthKpc).To(Equal(10.0))
		Expect(cells[0].EnergyScale()).To(Equal(1.0))
	})

	It("carries an absorption rate when set", func() {
		s := environ.NewSlab(1.0, 0, 1e-3, 10.0)
		s.GammaKpc = 0.2
		Expect(s.Cells()[0].GammaKpc).To(Equal(0.2))
	})
})

var _ = Describe("TotalLengthKpc", func() {
	It("sums cell lengths across modules", func() {
		a := environ.NewSlab(1, 0, 0, 10)
		b := environ.NewCellICM(1)
		b.NCells = 10
		b.RadiusKpc = 100

		total := environ.TotalLengthKpc([]environ.Module{a, b})
		Expect(total).To(BeNumerically("~", 110.0, 1e-9))
	})

	It("is zero for an empty module list", func() {
		Expect(environ.TotalLengthKpc(nil)).To(BeZero())
	})
})
