package config

import (
	"fmt"
	"os"
	"time"

	"airkeys/internal/collision"
	"airkeys/internal/keyboard"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Keyboard KeyboardConfig `yaml:"keyboard"`
	Dwell    DwellConfig    `yaml:"dwell"`
	Pointer  PointerConfig  `yaml:"pointer"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	Fullscreen   bool   `yaml:"fullscreen"`
}

// KeyboardConfig is the key schema and its placement, in frame pixels
type KeyboardConfig struct {
	Rows      [][]string `yaml:"rows"`
	OriginX   int        `yaml:"origin_x"`
	OriginY   int        `yaml:"origin_y"`
	KeyWidth  int        `yaml:"key_width"`
	KeyHeight int        `yaml:"key_height"`
	Gap       int        `yaml:"gap"`
}

type DwellConfig struct {
	HoldTime float64 `yaml:"hold_time"` // Seconds the pointer must stay on a key
}

// Pointer sources
const (
	PointerSourceMouse  = "mouse"
	PointerSourceReplay = "replay"
)

type PointerConfig struct {
	Source        string `yaml:"source"`         // "mouse" or "replay"
	ReplayFile    string `yaml:"replay_file"`    // Trace used by the replay source
	RequireButton bool   `yaml:"require_button"` // Mouse only counts while the left button is held
	MarkerRadius  int    `yaml:"marker_radius"`  // Fingertip marker size
}

type GraphicsConfig struct {
	Colors        ColorsConfig `yaml:"colors"`
	BorderWidth   int          `yaml:"border_width"`
	ProgressBar   int          `yaml:"progress_bar"` // Height of the dwell progress bar
	ChatBarX      int          `yaml:"chat_bar_x"`
	ChatBarY      int          `yaml:"chat_bar_y"`
	ChatBarHeight int          `yaml:"chat_bar_height"`
	ChatBarMargin int          `yaml:"chat_bar_margin"` // Right-side margin from the frame edge
}

type ColorsConfig struct {
	Key      [3]int `yaml:"key"`
	Hover    [3]int `yaml:"hover"`
	Text     [3]int `yaml:"text"`
	Border   [3]int `yaml:"border"`
	ChatBar  [3]int `yaml:"chat_bar"`
	Progress [3]int `yaml:"progress"`
	Pointer  [3]int `yaml:"pointer"`
}

type FeedbackConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Frequency  float64 `yaml:"frequency"`   // Hz
	DurationMs int     `yaml:"duration_ms"` // Click length
	Volume     float64 `yaml:"volume"`      // 0.0 to 1.0
}

type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"` // Empty means stderr
}

// LoadConfig loads the configuration from a YAML file.
// Values missing from the file keep their defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetHoldTime returns the dwell duration
func (c *Config) GetHoldTime() time.Duration {
	return time.Duration(c.Dwell.HoldTime * float64(time.Second))
}

// GetGeometry returns the keyboard placement
func (c *Config) GetGeometry() keyboard.Geometry {
	return keyboard.Geometry{
		Origin:  collision.Point{X: c.Keyboard.OriginX, Y: c.Keyboard.OriginY},
		KeySize: keyboard.Size{W: c.Keyboard.KeyWidth, H: c.Keyboard.KeyHeight},
		Gap:     c.Keyboard.Gap,
	}
}

// GetRows returns the key label schema
func (c *Config) GetRows() [][]string {
	return c.Keyboard.Rows
}

// GetClickDuration returns the length of the feedback click
func (c *Config) GetClickDuration() time.Duration {
	return time.Duration(c.Feedback.DurationMs) * time.Millisecond
}
