package game

import (
	"airkeys/internal/game/keytracker"

	"github.com/StantStantov/rps/swamp/logging"
	"github.com/StantStantov/rps/swamp/logging/logfmt"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputHandler handles the shell's own keys. Typing itself goes through the pointer.
type InputHandler struct {
	game       *KeyboardGame
	quitKey    *keytracker.KeyStateTracker
	debugKey   *keytracker.KeyStateTracker
	resetKey   *keytracker.KeyStateTracker
	fullscreen *keytracker.KeyStateTracker
}

// NewInputHandler creates a new input handler
func NewInputHandler(game *KeyboardGame) *InputHandler {
	return &InputHandler{
		game:       game,
		quitKey:    keytracker.New(ebiten.KeyEscape),
		debugKey:   keytracker.New(ebiten.KeyF3),
		resetKey:   keytracker.New(ebiten.KeyF5),
		fullscreen: keytracker.New(ebiten.KeyF11),
	}
}

// HandleInput processes shell keys for the current frame.
// It returns ebiten.Termination when the user asks to quit.
func (ih *InputHandler) HandleInput() error {
	if ih.quitKey.JustPressed() {
		ih.logAction("quit requested")
		return ebiten.Termination
	}

	if ih.debugKey.JustPressed() {
		ih.game.showDebug = !ih.game.showDebug
		ih.logAction("debug overlay toggled")
	}

	if ih.resetKey.JustPressed() {
		ih.game.session.Reset()
	}

	if ih.fullscreen.JustPressed() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		ih.logAction("fullscreen toggled")
	}
	return nil
}

func (ih *InputHandler) logAction(message string) {
	showDebug := ih.game.showDebug
	text := ih.game.session.Text()
	logging.GetThenSendInfo(
		ih.game.logger,
		message,
		func(event *logging.Event, level logging.Level) error {
			if showDebug {
				logfmt.String(event, "overlay", "on")
			} else {
				logfmt.String(event, "overlay", "off")
			}
			logfmt.Integer(event, "buffer.length", len([]rune(text)))
			return nil
		},
	)
}
