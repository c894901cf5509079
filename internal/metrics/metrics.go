// Package metrics provides conservation diagnostics observed over a
// run. Each metric implements a Name/Observe/Value/Reset cycle in the
// spirit of streaming accumulators: observe every tick, read once.
package metrics

import (
	"math"

	"github.com/cdc6d/nbody/internal/world"
)

// Metric accumulates a scalar diagnostic over world snapshots.
type Metric interface {
	Name() string
	Observe(w *world.World, tick int)
	Value() float64
	Reset()
}

// EnergyDrift tracks the maximum relative deviation of total energy
// from its first observed value. Collisions shed energy, so drift here
// measures the collision model as much as integration error.
type EnergyDrift struct {
	g        float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(g float64) *EnergyDrift {
	return &EnergyDrift{g: g}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(w *world.World, tick int) {
	energy := w.Energy(e.g)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++
	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the maximum absolute deviation of total linear
// momentum magnitude from its first observed value. Gravity-only steps
// conserve momentum exactly; collisions do not.
type MomentumDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(w *world.World, tick int) {
	px, py := w.Momentum()
	mag := math.Hypot(px, py)
	if m.samples == 0 {
		m.initial = mag
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, math.Abs(mag-m.initial))
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
