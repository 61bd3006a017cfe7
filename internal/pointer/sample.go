// Package pointer supplies the tracked fingertip position for each frame.
package pointer

import (
	"time"

	"airkeys/internal/collision"
)

// Sample is the pointer position for one frame, or an absent reading when
// no hand was detected.
type Sample struct {
	X, Y    int
	Present bool
}

// At returns a present sample at (x, y)
func At(x, y int) Sample {
	return Sample{X: x, Y: y, Present: true}
}

// None returns an absent sample
func None() Sample {
	return Sample{}
}

// Point returns the sample position
func (s Sample) Point() collision.Point {
	return collision.Point{X: s.X, Y: s.Y}
}

// Source produces one sample per frame. now is the time since the session started.
type Source interface {
	Sample(frameW, frameH int, now time.Duration) Sample
}

// SourceFunc adapts a function to Source
type SourceFunc func(frameW, frameH int, now time.Duration) Sample

func (f SourceFunc) Sample(frameW, frameH int, now time.Duration) Sample {
	return f(frameW, frameH, now)
}
