package wave_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravwave/internal/wave"
)

var _ = Describe("Source", func() {
	var src wave.Source

	BeforeEach(func() {
		src = wave.DefaultSource()
	})

	Describe("Positions", func() {
		It("keeps the pair separated by exactly the configured separation", func() {
			for t := 0.0; t < 25.0; t += 0.13 {
				p1, p2 := src.Positions(t)
				Expect(p1.Dist(p2)).To(BeNumerically("~", src.Separation, 1e-9),
					"at t=%f", t)
			}
		})

		It("keeps both bodies equidistant from the orbital center", func() {
			center := wave.Point{}
			for t := 0.0; t < 25.0; t += 0.37 {
				p1, p2 := src.Positions(t)
				Expect(p1.Dist(center)).To(BeNumerically("~", p2.Dist(center), 1e-9))
				Expect(p1.Dist(center)).To(BeNumerically("~", src.Separation/2, 1e-9))
			}
		})

		It("completes one revolution per period", func() {
			start1, _ := src.Positions(0)
			end1, _ := src.Positions(src.Period)
			Expect(end1.X).To(BeNumerically("~", start1.X, 1e-9))
			Expect(end1.Y).To(BeNumerically("~", start1.Y, 1e-9))
		})
	})

	Describe("Deformation", func() {
		It("matches the grid shape for every frame time", func() {
			grid := wave.NewGrid(17, src.Extent)
			for t := 0.0; t < 3.0; t += 0.5 {
				field := src.Deformation(grid, t)
				Expect(field.Matches(grid)).To(BeTrue())
				Expect(field.Values).To(HaveLen(17 * 17))
			}
		})

		It("is deterministic for identical inputs", func() {
			grid := wave.NewGrid(24, src.Extent)
			a := src.Deformation(grid, 1.7)
			b := src.Deformation(grid, 1.7)
			Expect(a.Values).To(Equal(b.Values))
		})

		It("decays with distance from the source", func() {
			near := math.Abs(src.DisplacementAt(1.5, 0.2, 0.9))
			far := math.Abs(src.DisplacementAt(5.8, 0.77, 0.9))
			Expect(far).To(BeNumerically("<", near))
		})

		It("weakens for lopsided mass pairs", func() {
			lopsided := src
			lopsided.Mass1 = 10
			lopsided.Mass2 = 0.1
			// Sample away from the mass wells so only the ripple term matters.
			equal := math.Abs(src.DisplacementAt(4.0, 1.0, 0.3))
			skew := math.Abs(lopsided.DisplacementAt(4.0, 1.0, 0.3))
			Expect(skew).To(BeNumerically("<", equal))
		})

		It("dips under each body", func() {
			p1, _ := src.Positions(0)
			under := src.DisplacementAt(p1.X, p1.Y, 0)
			ambient := src.DisplacementAt(p1.X+3.0, p1.Y+3.0, 0)
			Expect(under).To(BeNumerically("<", ambient))
		})
	})
})
