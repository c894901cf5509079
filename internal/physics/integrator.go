package physics

import (
	"math"

	"github.com/cdc6d/nbody/internal/world"
)

// DefaultG is the gravitational constant tuned for the reference
// configuration. Not physically dimensioned.
const DefaultG = 0.0005

// coincidenceEps is the squared-distance floor below which two bodies
// are considered numerically coincident. Such pairs are resolved as a
// collision along an arbitrary unit separation axis instead of
// dividing by zero.
const coincidenceEps = 1e-12

// Integrator advances a World one tick at a time.
type Integrator struct {
	G float64
}

// NewIntegrator returns an Integrator with gravitational constant g.
func NewIntegrator(g float64) *Integrator {
	return &Integrator{G: g}
}

// Advance mutates every body's velocity, then every body's position.
// The velocity pass visits each pair (i, j) with i < j exactly once and
// commits its updates in place; the position pass uses the final
// velocities, never pairwise-intermediate ones.
func (it *Integrator) Advance(w *world.World) {
	n := w.Len()

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			it.interact(w, i, j)
		}
	}

	for i := 0; i < n; i++ {
		w.X[i] += w.VX[i]
		w.Y[i] += w.VY[i]
	}
}

// interact applies either collision resolution or a gravitational
// impulse to the pair (i, j), never both.
func (it *Integrator) interact(w *world.World, i, j int) {
	dx := w.X[j] - w.X[i]
	dy := w.Y[j] - w.Y[i]
	r2 := dx*dx + dy*dy

	if r2 < coincidenceEps {
		collide(w, i, j, 1, 0)
		return
	}

	r := math.Sqrt(r2)
	minSep := (w.Diam[i] + w.Diam[j]) / 2

	if r <= minSep {
		collide(w, i, j, dx/r, dy/r)
		return
	}

	mi := w.Mass(i)
	mj := w.Mass(j)
	force := it.G * mi * mj / r2
	fx := force * dx / r
	fy := force * dy / r

	w.VX[i] += fx / mi
	w.VY[i] += fy / mi
	w.VX[j] -= fx / mj
	w.VY[j] -= fy / mj
}

// collide resolves an overlapping pair along the unit normal (nx, ny),
// which points from body i toward body j. If the bodies are already
// separating this is a no-op. Otherwise each body keeps only its
// tangential velocity component; the normal components are absorbed
// regardless of mass. The shed kinetic energy is not tracked yet.
func collide(w *world.World, i, j int, nx, ny float64) {
	tx, ty := -ny, nx

	vin := w.VX[i]*nx + w.VY[i]*ny
	vjn := w.VX[j]*nx + w.VY[j]*ny

	// Closing speed along the line of centers.
	if vin-vjn <= 0 {
		return
	}

	vit := w.VX[i]*tx + w.VY[i]*ty
	vjt := w.VX[j]*tx + w.VY[j]*ty

	w.VX[i], w.VY[i] = vit*tx, vit*ty
	w.VX[j], w.VY[j] = vjt*tx, vjt*ty
}
