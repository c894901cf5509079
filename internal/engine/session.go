package engine

import (
	"github.com/cdc6d/nbody/internal/physics"
	"github.com/cdc6d/nbody/internal/world"
)

// Session owns one World, its run mode, and the integrator that
// advances it. Frontends hold exactly one Session and call Tick from
// whatever loop schedules their frames.
type Session struct {
	World *world.World
	Mode  *Mode

	integ *physics.Integrator
	ticks int
}

// NewSession creates a running Session over w with gravitational
// constant g.
func NewSession(w *world.World, g float64) *Session {
	return &Session{
		World: w,
		Mode:  NewMode(),
		integ: physics.NewIntegrator(g),
	}
}

// Apply feeds one user command to the state machine.
func (s *Session) Apply(cmd Command) { s.Mode.Apply(cmd) }

// Tick advances physics by one step if the mode permits, consuming a
// pending step request. It reports whether an advance happened.
func (s *Session) Tick() bool {
	if !s.Mode.ShouldAdvance() {
		return false
	}
	s.integ.Advance(s.World)
	s.Mode.FrameAdvanced()
	s.ticks++
	return true
}

// Done reports whether the session received Quit.
func (s *Session) Done() bool { return s.Mode.Quit() }

// Ticks returns the number of physics advances performed so far.
func (s *Session) Ticks() int { return s.ticks }

// G returns the session's gravitational constant.
func (s *Session) G() float64 { return s.integ.G }
