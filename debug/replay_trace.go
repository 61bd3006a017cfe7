package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"airkeys/internal/config"
	"airkeys/internal/dwell"
	"airkeys/internal/keyboard"
	"airkeys/internal/pointer"
	"airkeys/internal/session"

	"github.com/StantStantov/rps/swamp/logging"
	"github.com/StantStantov/rps/swamp/logging/logfmt"
)

// Replays a pointer trace headlessly at a fixed tick rate and prints what gets typed.
// Usage: go run ./debug [trace.yaml] (run from the repository root)
func main() {
	tracePath := "assets/traces/hello.yaml"
	if len(os.Args) > 1 {
		tracePath = os.Args[1]
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Printf("Warning: using default config: %v", err)
		cfg = config.DefaultConfig()
	}

	replay, err := pointer.LoadReplay(tracePath)
	if err != nil {
		log.Fatalf("Failed to load trace: %v", err)
	}

	resolver, err := dwell.New(cfg.GetHoldTime())
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.NewLogger(os.Stderr, logfmt.MainFormat, logging.LevelDebug, 256)
	sess := session.New(keyboard.NewEngine(cfg.GetRows(), cfg.GetGeometry()), resolver, logger)

	fmt.Println("Replaying", tracePath)
	fmt.Println("===========================")

	const tick = time.Second / 60
	w, h := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	for now := time.Duration(0); now <= replay.Duration()+tick; now += tick {
		frame := sess.Step(session.Input{
			Sample: replay.Sample(w, h, now),
			FrameW: w,
			FrameH: h,
			Now:    now,
		})
		if frame.HasPress {
			fmt.Printf("%6.3fs  %-6s %-14s -> %q\n", now.Seconds(), frame.Hovered.Label, frame.Confirmed, frame.Text)
		}
	}

	fmt.Printf("\nFinal text: %q\n", sess.Text())
}
