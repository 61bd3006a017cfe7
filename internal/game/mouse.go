package game

import (
	"time"

	"airkeys/internal/pointer"

	"github.com/hajimehoshi/ebiten/v2"
)

// MouseSource stands in for the hand detector: the cursor is the fingertip.
type MouseSource struct {
	requireButton bool
}

// NewMouseSource creates a cursor-driven pointer source.
// With requireButton set, the pointer only counts while the left button is held.
func NewMouseSource(requireButton bool) *MouseSource {
	return &MouseSource{requireButton: requireButton}
}

// Sample reads the cursor. It is absent outside the frame.
func (m *MouseSource) Sample(frameW, frameH int, _ time.Duration) pointer.Sample {
	if m.requireButton && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return pointer.None()
	}
	x, y := ebiten.CursorPosition()
	return cursorSample(x, y, frameW, frameH)
}

// cursorSample treats a cursor outside the frame as no hand in view
func cursorSample(x, y, frameW, frameH int) pointer.Sample {
	if x < 0 || y < 0 || x >= frameW || y >= frameH {
		return pointer.None()
	}
	return pointer.At(x, y)
}
