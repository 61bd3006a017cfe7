package main

import (
	"errors"
	"io"
	"log"
	"os"

	"airkeys/internal/config"
	"airkeys/internal/dwell"
	"airkeys/internal/feedback"
	"airkeys/internal/game"
	"airkeys/internal/keyboard"
	"airkeys/internal/monitoring"
	"airkeys/internal/pointer"
	"airkeys/internal/session"

	"github.com/StantStantov/rps/swamp/logging"
	"github.com/StantStantov/rps/swamp/logging/logfmt"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: config.yaml not found, using defaults")
		cfg = config.DefaultConfig()
	} else if err != nil {
		log.Fatal(err)
	}

	logOut, closeLog := openLogOutput(cfg.Logging)
	defer closeLog()
	logger := logging.NewLogger(logOut, logfmt.MainFormat, logging.LevelDebug, 256)

	resolver, err := dwell.New(cfg.GetHoldTime())
	if err != nil {
		log.Fatal(err)
	}

	source, err := newPointerSource(cfg.Pointer)
	if err != nil {
		log.Fatal(err)
	}

	clicker := newClicker(cfg, logger)
	defer clicker.Close()

	monitor := monitoring.NewPerformanceMonitor()
	layout := keyboard.NewEngine(cfg.GetRows(), cfg.GetGeometry())
	sess := session.New(layout, resolver, logger,
		session.WithClicker(clicker),
		session.WithMonitor(monitor),
	)

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(cfg.Display.Fullscreen)

	g := game.NewKeyboardGame(cfg, sess, source, monitor, logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}

	logging.GetThenSendInfo(
		logger,
		"session ended",
		func(event *logging.Event, level logging.Level) error {
			logfmt.String(event, "buffer.text", g.Text())
			return nil
		},
	)
}

func openLogOutput(cfg config.LoggingConfig) (io.Writer, func()) {
	if !cfg.Enabled {
		return io.Discard, func() {}
	}
	if cfg.File == "" {
		return os.Stderr, func() {}
	}
	f, err := os.Create(cfg.File)
	if err != nil {
		log.Printf("Warning: cannot open log file %s: %v", cfg.File, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

func newPointerSource(cfg config.PointerConfig) (pointer.Source, error) {
	if cfg.Source == config.PointerSourceReplay {
		replay, err := pointer.LoadReplay(cfg.ReplayFile)
		if err != nil {
			return nil, err
		}
		return replay, nil
	}
	return game.NewMouseSource(cfg.RequireButton), nil
}

func newClicker(cfg *config.Config, logger *logging.Logger) feedback.Clicker {
	fb := cfg.Feedback
	if !fb.Enabled {
		return feedback.Noop{}
	}
	tone, err := feedback.NewTone(feedback.ToneConfig{
		Frequency: fb.Frequency,
		Duration:  cfg.GetClickDuration(),
		Volume:    fb.Volume,
	}, logger)
	if err != nil {
		log.Printf("Warning: audio unavailable, key clicks disabled: %v", err)
		return feedback.Noop{}
	}
	return tone
}
