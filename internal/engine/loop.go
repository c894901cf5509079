package engine

import (
	"context"
	"time"

	"github.com/cdc6d/nbody/internal/world"
)

// Renderer receives the world once per advancing tick. It must not
// mutate the world or retain a reference to it across calls.
type Renderer interface {
	Render(w *world.World)
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(w *world.World)

func (f RenderFunc) Render(w *world.World) { f(w) }

// InputSource yields at most one command per call without blocking.
// When multiple raw events are pending, Quit takes precedence.
type InputSource interface {
	Poll() Command
}

// PollFunc adapts a function to the InputSource interface.
type PollFunc func() Command

func (f PollFunc) Poll() Command { return f() }

// Observer is notified after each physics advance.
type Observer interface {
	OnTick(w *world.World, tick int)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(w *world.World, tick int)

func (f ObserverFunc) OnTick(w *world.World, tick int) { f(w, tick) }

// LoopConfig bounds and paces a Loop run.
type LoopConfig struct {
	// Idle is how long a paused tick yields before polling again.
	Idle time.Duration
	// MaxTicks stops the loop after that many physics advances.
	// Zero means unlimited.
	MaxTicks int
	// Bound stops the loop once any body's x or y falls below it,
	// when UseBound is set.
	Bound    float64
	UseBound bool
}

// Loop is the explicit frame driver: render, advance, poll, repeat.
// It owns exclusive access to the session's World for the duration of
// Run.
type Loop struct {
	session   *Session
	renderer  Renderer
	input     InputSource
	cfg       LoopConfig
	observers []Observer
}

// NewLoop wires a session to its render and input collaborators.
func NewLoop(s *Session, r Renderer, in InputSource, cfg LoopConfig) *Loop {
	if cfg.Idle <= 0 {
		cfg.Idle = 10 * time.Millisecond
	}
	return &Loop{session: s, renderer: r, input: in, cfg: cfg}
}

// AddObserver registers an observer called after every physics advance.
func (l *Loop) AddObserver(o Observer) {
	l.observers = append(l.observers, o)
}

// Run executes ticks until Quit is applied, the context is canceled,
// the tick budget is exhausted, or a body escapes the configured bound.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if l.session.Done() {
			return nil
		}

		if l.session.Mode.ShouldAdvance() {
			l.renderer.Render(l.session.World)
			l.session.Tick()
			for _, o := range l.observers {
				o.OnTick(l.session.World, l.session.Ticks())
			}
			if l.escaped() {
				return nil
			}
		} else {
			time.Sleep(l.cfg.Idle)
		}

		l.session.Apply(l.input.Poll())

		if l.cfg.MaxTicks > 0 && l.session.Ticks() >= l.cfg.MaxTicks {
			return nil
		}
	}
}

// escaped reports whether any body left the configured bound.
func (l *Loop) escaped() bool {
	if !l.cfg.UseBound {
		return false
	}
	w := l.session.World
	for i := 0; i < w.Len(); i++ {
		if w.X[i] < l.cfg.Bound || w.Y[i] < l.cfg.Bound {
			return true
		}
	}
	return false
}
