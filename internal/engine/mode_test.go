package engine

import "testing"

func TestModeStartsRunning(t *testing.T) {
	m := NewMode()
	if !m.ShouldAdvance() {
		t.Error("new mode should be running")
	}
	if m.String() != "running" {
		t.Errorf("expected running, got %s", m.String())
	}
}

func TestToggleRunPause(t *testing.T) {
	m := NewMode()

	m.Apply(CmdToggleRunPause)
	if m.ShouldAdvance() {
		t.Error("toggled from running: should be paused")
	}

	m.Apply(CmdToggleRunPause)
	if !m.ShouldAdvance() {
		t.Error("toggled from paused: should be running")
	}
}

func TestToggleCollapsesStepping(t *testing.T) {
	m := NewMode()
	m.Apply(CmdToggleRunPause) // paused
	m.Apply(CmdStepOnce)
	m.Apply(CmdStepOnce) // stepping(2)
	m.Apply(CmdToggleRunPause)

	if m.String() != "paused" {
		t.Errorf("toggle mid-stepping should pause, got %s", m.String())
	}
	m.Apply(CmdStepOnce)
	if m.String() != "stepping(1)" {
		t.Errorf("pending steps should have been dropped, got %s", m.String())
	}
}

func TestStepAccumulatesWhilePaused(t *testing.T) {
	m := NewMode()
	m.Apply(CmdToggleRunPause)
	m.Apply(CmdStepOnce)
	m.Apply(CmdStepOnce)

	if m.String() != "stepping(2)" {
		t.Fatalf("expected stepping(2), got %s", m.String())
	}

	// Each advanced frame consumes one pending step.
	if !m.ShouldAdvance() {
		t.Fatal("stepping mode should advance")
	}
	m.FrameAdvanced()
	if m.String() != "stepping(1)" {
		t.Errorf("expected stepping(1), got %s", m.String())
	}
	m.FrameAdvanced()
	if m.String() != "paused" {
		t.Errorf("expected paused after steps consumed, got %s", m.String())
	}
	if m.ShouldAdvance() {
		t.Error("paused mode should not advance")
	}
}

func TestStepWhileRunningIsNoOp(t *testing.T) {
	m := NewMode()
	m.Apply(CmdStepOnce)
	if m.String() != "running" {
		t.Errorf("step while running should not change mode, got %s", m.String())
	}
}

func TestFrameAdvancedWhileRunningIsNoOp(t *testing.T) {
	m := NewMode()
	m.FrameAdvanced()
	if m.String() != "running" {
		t.Errorf("expected running, got %s", m.String())
	}
}

func TestQuitIsTerminal(t *testing.T) {
	m := NewMode()
	m.Apply(CmdQuit)

	if !m.Quit() {
		t.Fatal("expected quit")
	}
	if m.ShouldAdvance() {
		t.Error("quit mode should not advance")
	}

	for _, cmd := range []Command{CmdToggleRunPause, CmdStepOnce, CmdNone} {
		m.Apply(cmd)
		if !m.Quit() || m.ShouldAdvance() {
			t.Errorf("command %s after quit changed mode", cmd)
		}
	}
}
