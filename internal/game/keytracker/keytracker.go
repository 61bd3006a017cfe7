// Package keytracker turns Ebiten's level-triggered key state into single presses.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of one key.
type KeyStateTracker struct {
	key         ebiten.Key
	prevPressed bool
}

// New creates a tracker for key
func New(key ebiten.Key) *KeyStateTracker {
	return &KeyStateTracker{key: key}
}

// JustPressed returns true if the key was not pressed last frame but is pressed this frame.
// Call it once per frame.
func (k *KeyStateTracker) JustPressed() bool {
	return k.Observe(ebiten.IsKeyPressed(k.key))
}

// Observe records the key state for this frame and reports a rising edge
func (k *KeyStateTracker) Observe(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}

// Key returns the tracked key
func (k *KeyStateTracker) Key() ebiten.Key {
	return k.key
}
