package config

import "airkeys/internal/keyboard"

// DefaultConfig returns the configuration the application runs with when no file is present
func DefaultConfig() *Config {
	rows := make([][]string, len(keyboard.QWERTY))
	for i, row := range keyboard.QWERTY {
		rows[i] = append([]string(nil), row...)
	}

	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			WindowTitle:  "Virtual Keyboard",
			Resizable:    true,
		},
		Keyboard: KeyboardConfig{
			Rows:      rows,
			OriginX:   50,
			OriginY:   150,
			KeyWidth:  50,
			KeyHeight: 50,
			Gap:       8,
		},
		Dwell: DwellConfig{
			HoldTime: 1.0,
		},
		Pointer: PointerConfig{
			Source:       PointerSourceMouse,
			MarkerRadius: 10,
		},
		Graphics: GraphicsConfig{
			Colors: ColorsConfig{
				Key:      [3]int{183, 72, 203},
				Hover:    [3]int{0, 255, 0},
				Text:     [3]int{255, 255, 255},
				Border:   [3]int{0, 0, 0},
				ChatBar:  [3]int{0, 0, 0},
				Progress: [3]int{255, 255, 0},
				Pointer:  [3]int{0, 255, 255},
			},
			BorderWidth:   2,
			ProgressBar:   4,
			ChatBarX:      50,
			ChatBarY:      50,
			ChatBarHeight: 70,
			ChatBarMargin: 50,
		},
		Feedback: FeedbackConfig{
			Enabled:    true,
			Frequency:  880,
			DurationMs: 40,
			Volume:     0.3,
		},
		Logging: LoggingConfig{
			Enabled: true,
		},
	}
}
