// Package viz provides the terminal frontend: a Braille-canvas view of
// the world driven by a Bubble Tea program.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	. / s - Advance a single frame while paused
//	Q     - Quit
package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cdc6d/nbody/internal/config"
	"github.com/cdc6d/nbody/internal/engine"
)

const (
	canvasWidth  = 100
	canvasHeight = 30
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model contains the session and visualization buffers.
type Model struct {
	session *engine.Session
	cfg     *config.Config
	canvas  *Canvas
	tick    time.Duration
}

// NewModel initializes the terminal view over a fresh session built
// from cfg.
func NewModel(cfg *config.Config) (Model, error) {
	w, err := cfg.NewWorld()
	if err != nil {
		return Model{}, err
	}
	return Model{
		session: engine.NewSession(w, cfg.G),
		cfg:     cfg,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		tick:    time.Duration(cfg.TickMS) * time.Millisecond,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.session.Apply(engine.CmdQuit)
			return m, tea.Quit
		case " ":
			m.session.Apply(engine.CmdToggleRunPause)
		case ".", "s":
			m.session.Apply(engine.CmdStepOnce)
		}
	case TickMsg:
		if m.session.Done() {
			return m, tea.Quit
		}
		m.session.Tick()
		return m, tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	w := m.session.World

	// World coordinates map onto the canvas sub-pixel grid.
	sx := float64(canvasWidth*2) / float64(m.cfg.Width)
	sy := float64(canvasHeight*4) / float64(m.cfg.Height)

	m.canvas.Clear()
	for i := 0; i < w.Len(); i++ {
		cx := int(w.X[i] * sx)
		cy := int(w.Y[i] * sy)
		d := int(w.Diam[i] * sx)
		m.canvas.FillCircle(cx, cy, d)
	}

	mode := statusStyle.Render(m.session.Mode.String())
	if !m.session.Mode.ShouldAdvance() && !m.session.Done() {
		mode = pausedStyle.Render(m.session.Mode.String())
	}

	status := fmt.Sprintf("%s  tick %d  energy %.2f",
		mode, m.session.Ticks(), w.Energy(m.session.G()))

	return headerStyle.Render("nbody") + "\n" +
		m.canvas.String() +
		status +
		helpStyle.Render("\nspace pause/resume · . step · q quit")
}

// Run builds the model and blocks inside the Bubble Tea program until
// the user quits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
