package world

import (
	"errors"
	"fmt"
	"math"
)

// Construction errors.
var (
	// ErrBadDiameter indicates a body with a non-positive diameter.
	ErrBadDiameter = errors.New("world: body diameter must be positive")

	// ErrCoincident indicates two bodies placed at identical coordinates.
	ErrCoincident = errors.New("world: bodies at coincident positions")
)

// Body describes one body's initial state. Diameter doubles as the
// rendered size and the mass proxy (mass = diameter squared).
type Body struct {
	X, Y   float64
	VX, VY float64
	Diam   float64
}

// World holds the full simulation state as flat parallel slices,
// one entry per body. Slice order is insertion order and never changes.
type World struct {
	X, Y   []float64
	VX, VY []float64
	Diam   []float64
}

// New builds a World from the given bodies. It rejects non-positive
// diameters and exactly coincident initial positions, since the pairwise
// force math divides by inter-body distance.
func New(bodies []Body) (*World, error) {
	w := &World{
		X:    make([]float64, len(bodies)),
		Y:    make([]float64, len(bodies)),
		VX:   make([]float64, len(bodies)),
		VY:   make([]float64, len(bodies)),
		Diam: make([]float64, len(bodies)),
	}
	for i, b := range bodies {
		if b.Diam <= 0 {
			return nil, fmt.Errorf("body %d: %w (got %f)", i, ErrBadDiameter, b.Diam)
		}
		w.X[i], w.Y[i] = b.X, b.Y
		w.VX[i], w.VY[i] = b.VX, b.VY
		w.Diam[i] = b.Diam
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if w.X[i] == w.X[j] && w.Y[i] == w.Y[j] {
				return nil, fmt.Errorf("bodies %d and %d: %w", i, j, ErrCoincident)
			}
		}
	}
	return w, nil
}

// Len returns the number of bodies.
func (w *World) Len() int { return len(w.X) }

// Mass returns the area-based 2D mass proxy of body i.
func (w *World) Mass(i int) float64 { return w.Diam[i] * w.Diam[i] }

// Clone returns a deep copy of the world.
func (w *World) Clone() *World {
	c := &World{
		X:    make([]float64, len(w.X)),
		Y:    make([]float64, len(w.Y)),
		VX:   make([]float64, len(w.VX)),
		VY:   make([]float64, len(w.VY)),
		Diam: make([]float64, len(w.Diam)),
	}
	copy(c.X, w.X)
	copy(c.Y, w.Y)
	copy(c.VX, w.VX)
	copy(c.VY, w.VY)
	copy(c.Diam, w.Diam)
	return c
}

// Energy returns kinetic plus gravitational potential energy under
// gravitational constant g. Collisions shed normal-axis kinetic energy,
// so this is a diagnostic, not a conserved quantity.
func (w *World) Energy(g float64) float64 {
	n := w.Len()
	ke := 0.0
	pe := 0.0

	for i := 0; i < n; i++ {
		mi := w.Mass(i)
		ke += 0.5 * mi * (w.VX[i]*w.VX[i] + w.VY[i]*w.VY[i])

		for j := i + 1; j < n; j++ {
			rx := w.X[j] - w.X[i]
			ry := w.Y[j] - w.Y[i]
			r := math.Sqrt(rx*rx + ry*ry)
			if r > 0 {
				pe -= g * mi * w.Mass(j) / r
			}
		}
	}

	return ke + pe
}

// Momentum returns the total linear momentum.
func (w *World) Momentum() (px, py float64) {
	for i := 0; i < w.Len(); i++ {
		m := w.Mass(i)
		px += m * w.VX[i]
		py += m * w.VY[i]
	}
	return
}

// AngularMomentum returns the total angular momentum about the origin.
func (w *World) AngularMomentum() float64 {
	L := 0.0
	for i := 0; i < w.Len(); i++ {
		L += w.Mass(i) * (w.X[i]*w.VY[i] - w.Y[i]*w.VX[i])
	}
	return L
}
