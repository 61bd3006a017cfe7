// Package dwell turns a per-frame hovered key into confirmed key presses.
//
// A key is pressed by holding the pointer over it for longer than the hold time.
// Moving to another key, or losing the pointer, restarts the timer.
package dwell

import (
	"errors"
	"time"
	"unicode/utf8"

	"airkeys/internal/keyboard"
	"airkeys/internal/textbuf"
)

// ErrInvalidHoldTime is returned for a hold time that is zero or negative
var ErrInvalidHoldTime = errors.New("dwell hold time must be positive")

// Phase is the resolver state machine position
type Phase int

const (
	Idle Phase = iota
	Hovering
)

func (p Phase) String() string {
	if p == Hovering {
		return "hovering"
	}
	return "idle"
}

// State is carried from one frame to the next. Key and Since are only
// meaningful while Hovering.
type State struct {
	Phase Phase
	Key   keyboard.KeySpec
	Since time.Duration
}

// Hovered returns the tracked key, if any
func (s State) Hovered() (keyboard.KeySpec, bool) {
	return s.Key, s.Phase == Hovering
}

// Resolver applies the dwell rule. It holds no per-frame state itself.
type Resolver struct {
	hold time.Duration
}

// New creates a resolver confirming after hold has been exceeded
func New(hold time.Duration) (Resolver, error) {
	if hold <= 0 {
		return Resolver{}, ErrInvalidHoldTime
	}
	return Resolver{hold: hold}, nil
}

// HoldTime returns the configured dwell duration
func (r Resolver) HoldTime() time.Duration {
	return r.hold
}

// Resolve advances the state machine by one frame.
// hit is the key under the pointer this frame, nil when there is none.
// At most one operation is returned per call; after a confirmation the state is
// Idle, so pressing the same key again takes a full new dwell.
func (r Resolver) Resolve(s State, hit *keyboard.KeySpec, now time.Duration) (State, textbuf.Op, bool) {
	if hit == nil {
		return State{}, textbuf.Op{}, false
	}

	if s.Phase != Hovering || s.Key != *hit {
		return State{Phase: Hovering, Key: *hit, Since: now}, textbuf.Op{}, false
	}

	if now-s.Since > r.hold {
		return State{}, OpFor(s.Key), true
	}
	return s, textbuf.Op{}, false
}

// Progress reports how far the current dwell is toward confirmation, in [0,1]
func (r Resolver) Progress(s State, now time.Duration) float64 {
	if s.Phase != Hovering {
		return 0
	}
	elapsed := now - s.Since
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= r.hold {
		return 1
	}
	return float64(elapsed) / float64(r.hold)
}

// OpFor maps a confirmed key to its buffer edit.
// Enter clears the whole buffer rather than inserting a line break.
func OpFor(k keyboard.KeySpec) textbuf.Op {
	switch k.Label {
	case keyboard.LabelSpace:
		return textbuf.AppendSpace()
	case keyboard.LabelDel:
		return textbuf.DeleteLast()
	case keyboard.LabelEnter:
		return textbuf.Clear()
	}
	c, _ := utf8.DecodeRuneInString(k.Label)
	return textbuf.AppendChar(c)
}
