// Package gui provides the windowed frontend rendered with Raylib.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/cdc6d/nbody/internal/config"
	"github.com/cdc6d/nbody/internal/engine"
	"github.com/cdc6d/nbody/internal/world"
)

var (
	colBg   = rl.NewColor(0, 0, 0, 255)
	colBody = rl.NewColor(192, 192, 192, 255)
	colText = rl.NewColor(140, 140, 140, 255)
)

type App struct {
	session *engine.Session
	cfg     *config.Config
	sprites []rl.Texture2D
}

// Run opens the window and blocks inside the frame loop until the user
// quits or closes the window. Window creation failure is fatal.
func Run(cfg *config.Config) error {
	w, err := cfg.NewWorld()
	if err != nil {
		return err
	}

	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "nbody")
	if !rl.IsWindowReady() {
		return fmt.Errorf("gui: window creation failed")
	}
	defer rl.CloseWindow()

	fps := int32(1000 / cfg.TickMS)
	if fps < 1 {
		fps = 1
	}
	rl.SetTargetFPS(fps)
	rl.SetExitKey(0)

	app := &App{session: engine.NewSession(w, cfg.G), cfg: cfg}
	app.createSprites(w)
	defer app.unloadSprites()

	for !rl.WindowShouldClose() {
		app.draw()
		app.session.Tick()
		app.session.Apply(pollCommand())
		if app.session.Done() {
			break
		}
	}
	return nil
}

// createSprites pre-renders one disk texture per body, sized to its
// diameter. Brightness falls off smoothly near the rim; diameters are
// immutable so this happens once.
func (a *App) createSprites(w *world.World) {
	a.sprites = make([]rl.Texture2D, w.Len())
	for i := 0; i < w.Len(); i++ {
		d := int(w.Diam[i])
		if d < 2 {
			d = 2
		}
		density := float32(1.0 - 2.0/float64(d))
		if density < 0 {
			density = 0
		}
		img := rl.GenImageGradientRadial(d, d, density, colBody, rl.NewColor(192, 192, 192, 0))
		a.sprites[i] = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
	}
}

func (a *App) unloadSprites() {
	for _, tex := range a.sprites {
		rl.UnloadTexture(tex)
	}
}

// draw renders every body in index order, centered on its position.
func (a *App) draw() {
	w := a.session.World

	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	for i := 0; i < w.Len(); i++ {
		r := w.Diam[i] / 2
		rl.DrawTexture(a.sprites[i], int32(w.X[i]-r), int32(w.Y[i]-r), rl.White)
	}

	rl.DrawText(fmt.Sprintf("%s  tick %d", a.session.Mode, a.session.Ticks()), 10, 10, 20, colText)
	rl.DrawText("space pause/resume · . step · q quit", 10, int32(a.cfg.Height)-30, 20, colText)

	rl.EndDrawing()
}

// pollCommand collapses this frame's pending key events to at most one
// command; quit wins over everything else.
func pollCommand() engine.Command {
	switch {
	case rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape):
		return engine.CmdQuit
	case rl.IsKeyPressed(rl.KeySpace):
		return engine.CmdToggleRunPause
	case rl.IsKeyPressed(rl.KeyPeriod) || rl.IsKeyPressed(rl.KeyS):
		return engine.CmdStepOnce
	}
	return engine.CmdNone
}
