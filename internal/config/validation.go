package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"airkeys/internal/keyboard"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e ValidationErrors) Unwrap() error {
	return ErrInvalidConfig
}

// ValidateConfig checks the values the core relies on
func ValidateConfig(c *Config) error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		add("display", "screen size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}

	if len(c.Keyboard.Rows) == 0 {
		add("keyboard.rows", "at least one row is required")
	}
	for r, row := range c.Keyboard.Rows {
		if len(row) == 0 {
			add(fmt.Sprintf("keyboard.rows[%d]", r), "row is empty")
		}
		for col, label := range row {
			if !validLabel(label) {
				add(fmt.Sprintf("keyboard.rows[%d][%d]", r, col), "label %q must be one character or Space, Del, Enter", label)
			}
		}
	}
	if c.Keyboard.KeyWidth <= 0 || c.Keyboard.KeyHeight <= 0 {
		add("keyboard", "key size must be positive, got %dx%d", c.Keyboard.KeyWidth, c.Keyboard.KeyHeight)
	}
	if c.Keyboard.Gap < 0 {
		add("keyboard.gap", "must not be negative, got %d", c.Keyboard.Gap)
	}

	if c.Dwell.HoldTime <= 0 {
		add("dwell.hold_time", "must be positive, got %v", c.Dwell.HoldTime)
	}

	switch c.Pointer.Source {
	case PointerSourceMouse:
	case PointerSourceReplay:
		if c.Pointer.ReplayFile == "" {
			add("pointer.replay_file", "required for the replay source")
		}
	default:
		add("pointer.source", "unknown source %q", c.Pointer.Source)
	}

	if c.Feedback.Enabled {
		if c.Feedback.Frequency <= 0 {
			add("feedback.frequency", "must be positive, got %v", c.Feedback.Frequency)
		}
		if c.Feedback.DurationMs <= 0 {
			add("feedback.duration_ms", "must be positive, got %d", c.Feedback.DurationMs)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validLabel(label string) bool {
	switch label {
	case keyboard.LabelSpace, keyboard.LabelDel, keyboard.LabelEnter:
		return true
	}
	return utf8.RuneCountInString(label) == 1
}
