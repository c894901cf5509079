package engine

import "fmt"

// Command is a discrete user input delivered to the state machine.
// At most one command arrives per tick.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdToggleRunPause
	CmdStepOnce
)

func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdQuit:
		return "quit"
	case CmdToggleRunPause:
		return "toggle"
	case CmdStepOnce:
		return "step"
	}
	return fmt.Sprintf("command(%d)", int(c))
}

type modeKind int

const (
	kindRunning modeKind = iota
	kindPaused
	kindStepping
)

// Mode gates whether physics advances on a given tick. It starts
// Running and is mutated only by Apply and FrameAdvanced.
type Mode struct {
	kind      modeKind
	remaining int
	quit      bool
}

// NewMode returns a Mode in the Running state.
func NewMode() *Mode {
	return &Mode{kind: kindRunning}
}

// Apply feeds one command to the state machine. After Quit has been
// applied the mode is terminal and every further command is ignored.
func (m *Mode) Apply(cmd Command) {
	if m.quit {
		return
	}
	switch cmd {
	case CmdQuit:
		m.quit = true
	case CmdToggleRunPause:
		if m.kind == kindPaused {
			m.kind = kindRunning
		} else {
			// A step request mid-stepping collapses to pause.
			m.kind = kindPaused
			m.remaining = 0
		}
	case CmdStepOnce:
		switch m.kind {
		case kindPaused:
			m.kind = kindStepping
			m.remaining = 1
		case kindStepping:
			m.remaining++
		case kindRunning:
			// No defined effect while running.
		}
	}
}

// ShouldAdvance reports whether physics may advance this tick.
func (m *Mode) ShouldAdvance() bool {
	if m.quit {
		return false
	}
	return m.kind == kindRunning || m.kind == kindStepping
}

// FrameAdvanced records that one physics advance happened, consuming a
// pending step if the mode is Stepping.
func (m *Mode) FrameAdvanced() {
	if m.kind != kindStepping {
		return
	}
	m.remaining--
	if m.remaining <= 0 {
		m.kind = kindPaused
		m.remaining = 0
	}
}

// Quit reports whether the terminal Quit command was received.
func (m *Mode) Quit() bool { return m.quit }

func (m *Mode) String() string {
	if m.quit {
		return "quit"
	}
	switch m.kind {
	case kindRunning:
		return "running"
	case kindPaused:
		return "paused"
	case kindStepping:
		return fmt.Sprintf("stepping(%d)", m.remaining)
	}
	return "unknown"
}
