// Package session runs one keyboard input pass per frame:
// layout, hit-test, dwell resolution and buffer edit.
package session

import (
	"context"
	"time"

	"airkeys/internal/dwell"
	"airkeys/internal/feedback"
	"airkeys/internal/keyboard"
	"airkeys/internal/monitoring"
	"airkeys/internal/pointer"
	"airkeys/internal/textbuf"

	"github.com/StantStantov/rps/swamp/logging"
	"github.com/StantStantov/rps/swamp/logging/logfmt"
)

// Input is everything one frame contributes to a pass
type Input struct {
	Sample pointer.Sample
	FrameW int
	FrameH int
	Now    time.Duration // Time since the session started
}

// Frame is the result of a pass, as seen by the renderer and the shell
type Frame struct {
	Keys       []keyboard.PlacedKey // Shared with the layout cache; read only
	Hovered    keyboard.KeySpec
	HasHovered bool
	Progress   float64 // Dwell progress on the hovered key, 0 to 1
	Text       string
	Confirmed  textbuf.Op
	HasPress   bool
}

// Session owns the cross-frame state: the dwell state and the text buffer.
// Step is not safe for concurrent use; feed concurrent producers through Run.
type Session struct {
	layout   *keyboard.Engine
	resolver dwell.Resolver
	state    dwell.State
	buffer   *textbuf.Buffer

	clicker feedback.Clicker
	monitor *monitoring.PerformanceMonitor
	logger  *logging.Logger
}

// Option configures a Session
type Option func(*Session)

// WithClicker plays c on every confirmed press
func WithClicker(c feedback.Clicker) Option {
	return func(s *Session) {
		s.clicker = c
	}
}

// WithMonitor records per-frame counters into m
func WithMonitor(m *monitoring.PerformanceMonitor) Option {
	return func(s *Session) {
		s.monitor = m
	}
}

// New creates a session with an empty buffer
func New(layout *keyboard.Engine, resolver dwell.Resolver, logger *logging.Logger, opts ...Option) *Session {
	childLogger := logging.NewChildLogger(logger, func(event *logging.Event) {
		logfmt.String(event, "from", "session")
	})

	s := &Session{
		layout:   layout,
		resolver: resolver,
		buffer:   textbuf.NewBuffer(),
		clicker:  feedback.Noop{},
		monitor:  monitoring.NewPerformanceMonitor(),
		logger:   childLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step runs one full pass for a frame
func (s *Session) Step(in Input) Frame {
	var frame Frame
	s.monitor.ProfiledFunction("resolve", func() {
		frame = s.step(in)
	})
	return frame
}

func (s *Session) step(in Input) Frame {
	keys := s.layout.Keys(in.FrameW, in.FrameH)

	var hit *keyboard.KeySpec
	if k, ok := keyboard.HitSample(in.Sample, keys); ok {
		hit = &k
	}

	prev := s.state
	next, op, pressed := s.resolver.Resolve(prev, hit, in.Now)
	s.state = next

	hoverChanged := prev.Phase != next.Phase || prev.Key != next.Key
	if hoverChanged && !pressed {
		s.logHover(next, in.Now)
	}

	if pressed {
		s.buffer.Apply(op)
		s.clicker.Click()
		s.logPress(prev.Key, op, in.Now)
	}
	s.monitor.RecordSample(in.Sample.Present, hoverChanged, pressed)

	frame := Frame{
		Keys:      keys,
		Progress:  s.resolver.Progress(next, in.Now),
		Text:      s.buffer.String(),
		Confirmed: op,
		HasPress:  pressed,
	}
	frame.Hovered, frame.HasHovered = next.Hovered()
	if pressed {
		// The confirmed key stays highlighted for the frame it fired on.
		frame.Hovered, frame.HasHovered = prev.Key, true
		frame.Progress = 1
	}
	return frame
}

// Run serializes passes from concurrent producers. Each Input received on in
// is stepped in order and its Frame sent on out. Run returns nil when in is
// closed and ctx.Err() when ctx is cancelled.
func (s *Session) Run(ctx context.Context, in <-chan Input, out chan<- Frame) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case input, ok := <-in:
			if !ok {
				return nil
			}
			frame := s.Step(input)
			select {
			case out <- frame:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Text returns the current buffer contents
func (s *Session) Text() string {
	return s.buffer.String()
}

// State returns the current dwell state
func (s *Session) State() dwell.State {
	return s.state
}

// Reset clears the buffer and forgets any dwell in progress
func (s *Session) Reset() {
	s.buffer.Apply(textbuf.Clear())
	s.state = dwell.State{}

	logging.GetThenSendInfo(
		s.logger,
		"session reset",
		func(event *logging.Event, level logging.Level) error {
			return nil
		},
	)
}

func (s *Session) logHover(next dwell.State, now time.Duration) {
	logging.GetThenSendDebug(
		s.logger,
		"hover changed",
		func(event *logging.Event, level logging.Level) error {
			logfmt.String(event, "dwell.phase", next.Phase.String())
			if next.Phase == dwell.Hovering {
				logfmt.String(event, "key.label", next.Key.Label)
				logfmt.Integer(event, "key.row", next.Key.Row)
				logfmt.Integer(event, "key.col", next.Key.Col)
			}
			logfmt.Integer(event, "frame.at_ms", int(now.Milliseconds()))
			return nil
		},
	)
}

func (s *Session) logPress(key keyboard.KeySpec, op textbuf.Op, now time.Duration) {
	length := s.buffer.Len()
	logging.GetThenSendInfo(
		s.logger,
		"key press confirmed",
		func(event *logging.Event, level logging.Level) error {
			logfmt.String(event, "key.label", key.Label)
			logfmt.String(event, "edit.op", op.String())
			logfmt.Integer(event, "buffer.length", length)
			logfmt.Integer(event, "frame.at_ms", int(now.Milliseconds()))
			return nil
		},
	)
}
