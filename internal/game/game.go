package game

import (
	"time"

	"airkeys/internal/config"
	"airkeys/internal/monitoring"
	"airkeys/internal/pointer"
	"airkeys/internal/session"

	"github.com/StantStantov/rps/swamp/logging"
	"github.com/StantStantov/rps/swamp/logging/logfmt"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardGame is the Ebiten shell around a typing session.
// It samples the pointer once per tick and renders the resulting frame.
type KeyboardGame struct {
	config  *config.Config
	session *session.Session
	source  pointer.Source
	monitor *monitoring.PerformanceMonitor
	logger  *logging.Logger

	// Time since the shell started; replaced in tests
	clock func() time.Duration

	// Frame dimensions, taken from the outside size Ebiten reports
	frameW, frameH int

	// Last pass, kept for Draw
	sample pointer.Sample
	frame  session.Frame

	// UI state
	showDebug bool

	gameLoop *GameLoop
}

// NewKeyboardGame wires a session and a pointer source into an Ebiten game
func NewKeyboardGame(cfg *config.Config, sess *session.Session, source pointer.Source, monitor *monitoring.PerformanceMonitor, logger *logging.Logger) *KeyboardGame {
	start := time.Now()
	childLogger := logging.NewChildLogger(logger, func(event *logging.Event) {
		logfmt.String(event, "from", "shell")
	})

	g := &KeyboardGame{
		config:  cfg,
		session: sess,
		source:  source,
		monitor: monitor,
		logger:  childLogger,
		clock:   func() time.Duration { return time.Since(start) },
		frameW:  cfg.GetScreenWidth(),
		frameH:  cfg.GetScreenHeight(),
	}
	g.gameLoop = NewGameLoop(g)
	return g
}

// Update implements ebiten.Game
func (g *KeyboardGame) Update() error {
	return g.gameLoop.Update()
}

// Draw implements ebiten.Game
func (g *KeyboardGame) Draw(screen *ebiten.Image) {
	g.gameLoop.Draw(screen)
}

// Layout implements ebiten.Game
func (g *KeyboardGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.gameLoop.Layout(outsideWidth, outsideHeight)
}

// Text returns what has been typed so far
func (g *KeyboardGame) Text() string {
	return g.session.Text()
}
