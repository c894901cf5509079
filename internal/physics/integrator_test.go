package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cdc6d/nbody/internal/physics"
	"github.com/cdc6d/nbody/internal/world"
)

func mustWorld(bodies []world.Body) *world.World {
	w, err := world.New(bodies)
	Expect(err).NotTo(HaveOccurred())
	return w
}

var _ = Describe("Integrator", func() {
	var it *physics.Integrator

	BeforeEach(func() {
		it = physics.NewIntegrator(1.0)
	})

	Describe("a single body", func() {
		It("drifts by its own velocity with no velocity change", func() {
			w := mustWorld([]world.Body{{X: 3, Y: 4, VX: 0.5, VY: -0.25, Diam: 10}})
			it.Advance(w)
			Expect(w.VX[0]).To(Equal(0.5))
			Expect(w.VY[0]).To(Equal(-0.25))
			Expect(w.X[0]).To(Equal(3.5))
			Expect(w.Y[0]).To(Equal(3.75))
		})
	})

	Describe("a gravity-only pair", func() {
		It("matches the reference two-body scenario", func() {
			w := mustWorld([]world.Body{
				{X: 0, Y: 0, Diam: 10},
				{X: 100, Y: 0, Diam: 10},
			})
			it.Advance(w)
			// force = 1*100*100/10000 = 1; positions use the
			// already-updated velocities.
			Expect(w.VX[0]).To(BeNumerically("~", 0.01, 1e-12))
			Expect(w.VX[1]).To(BeNumerically("~", -0.01, 1e-12))
			Expect(w.X[0]).To(BeNumerically("~", 0.01, 1e-12))
			Expect(w.X[1]).To(BeNumerically("~", 99.99, 1e-12))
			Expect(w.VY[0]).To(BeZero())
			Expect(w.VY[1]).To(BeZero())
		})

		It("applies equal and opposite impulses scaled by mass", func() {
			w := mustWorld([]world.Body{
				{X: 0, Y: 0, Diam: 10},
				{X: 50, Y: 0, Diam: 20},
			})
			it.Advance(w)
			m0, m1 := w.Mass(0), w.Mass(1)
			Expect(m0*w.VX[0] + m1*w.VX[1]).To(BeNumerically("~", 0, 1e-12))
			Expect(m0*w.VY[0] + m1*w.VY[1]).To(BeNumerically("~", 0, 1e-12))
			// f = 100*400/2500 = 16.
			Expect(w.VX[0]).To(BeNumerically("~", 0.16, 1e-12))
			Expect(w.VX[1]).To(BeNumerically("~", -0.04, 1e-12))
		})
	})

	Describe("an overlapping pair", func() {
		It("absorbs all normal motion in a head-on approach", func() {
			w := mustWorld([]world.Body{
				{X: 0, Y: 0, VX: 1, VY: 0, Diam: 10},
				{X: 5, Y: 0, VX: -1, VY: 0, Diam: 10},
			})
			it.Advance(w)
			Expect(w.VX[0]).To(BeZero())
			Expect(w.VY[0]).To(BeZero())
			Expect(w.VX[1]).To(BeZero())
			Expect(w.VY[1]).To(BeZero())
			// With velocities zeroed before integration, positions hold.
			Expect(w.X[0]).To(BeZero())
			Expect(w.X[1]).To(Equal(5.0))
		})

		It("preserves tangential motion exactly", func() {
			w := mustWorld([]world.Body{
				{X: 0, Y: 0, VX: 1, VY: 1, Diam: 10},
				{X: 5, Y: 0, VX: -1, VY: 2, Diam: 10},
			})
			it.Advance(w)
			Expect(w.VX[0]).To(BeNumerically("~", 0, 1e-12))
			Expect(w.VY[0]).To(BeNumerically("~", 1, 1e-12))
			Expect(w.VX[1]).To(BeNumerically("~", 0, 1e-12))
			Expect(w.VY[1]).To(BeNumerically("~", 2, 1e-12))
		})

		It("leaves separating bodies untouched, gravity suppressed", func() {
			w := mustWorld([]world.Body{
				{X: 0, Y: 0, VX: -1, VY: 0, Diam: 10},
				{X: 5, Y: 0, VX: 1, VY: 0, Diam: 10},
			})
			it.Advance(w)
			// No velocity change at all: the collision branch is a
			// no-op and the pair gets no gravitational impulse.
			Expect(w.VX[0]).To(Equal(-1.0))
			Expect(w.VX[1]).To(Equal(1.0))
			Expect(w.X[0]).To(Equal(-1.0))
			Expect(w.X[1]).To(Equal(6.0))
		})

		It("resolves numerically coincident bodies along a fixed axis", func() {
			w := mustWorld([]world.Body{
				{X: 0, Y: 0, VX: 1, VY: 0.5, Diam: 10},
				{X: 1, Y: 0, VX: -1, VY: 0.5, Diam: 10},
			})
			// Drift into exact coincidence; the construction check
			// cannot catch this.
			w.X[1] = 0
			it.Advance(w)
			// Fallback normal is (1, 0): x motion absorbed, y kept.
			Expect(w.VX[0]).To(BeZero())
			Expect(w.VX[1]).To(BeZero())
			Expect(w.VY[0]).To(BeNumerically("~", 0.5, 1e-12))
			Expect(w.VY[1]).To(BeNumerically("~", 0.5, 1e-12))
		})
	})

	Describe("pass ordering", func() {
		It("completes all velocity updates before any position update", func() {
			// Three collinear bodies: body 1 feels both neighbors
			// before anyone moves.
			w := mustWorld([]world.Body{
				{X: 0, Y: 0, Diam: 10},
				{X: 100, Y: 0, Diam: 10},
				{X: 200, Y: 0, Diam: 10},
			})
			it.Advance(w)
			// Symmetric pulls on the middle body cancel.
			Expect(w.VX[1]).To(BeNumerically("~", 0, 1e-12))
			Expect(w.X[1]).To(BeNumerically("~", 100, 1e-12))
		})
	})
})
