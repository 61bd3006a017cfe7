package game

import (
	"airkeys/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameLoop manages the per-tick update and render cycle
type GameLoop struct {
	game         *KeyboardGame
	inputHandler *InputHandler
	renderer     *Renderer
}

// NewGameLoop creates a new game loop manager
func NewGameLoop(game *KeyboardGame) *GameLoop {
	return &GameLoop{
		game:         game,
		inputHandler: NewInputHandler(game),
		renderer:     NewRenderer(game),
	}
}

// Update handles shell keys, then runs one input pass for the frame
func (gl *GameLoop) Update() error {
	frameTimer := gl.game.monitor.StartFrame()
	defer frameTimer.EndFrame()

	if err := gl.inputHandler.HandleInput(); err != nil {
		return err
	}

	gl.step()
	return nil
}

func (gl *GameLoop) step() {
	g := gl.game
	now := g.clock()
	g.sample = g.source.Sample(g.frameW, g.frameH, now)
	g.frame = g.session.Step(session.Input{
		Sample: g.sample,
		FrameW: g.frameW,
		FrameH: g.frameH,
		Now:    now,
	})
}

// Draw handles all rendering for one frame
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	gl.game.monitor.ProfiledFunction("render", func() {
		gl.renderer.Draw(screen)
	})
}

// Layout adopts the outside size as the frame size.
// A zero size (minimized window) keeps the previous frame size.
func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		gl.game.frameW, gl.game.frameH = outsideWidth, outsideHeight
	}
	return gl.game.frameW, gl.game.frameH
}
