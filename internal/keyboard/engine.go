package keyboard

import "airkeys/internal/collision"

// Geometry is the static placement configuration of the keyboard
type Geometry struct {
	Origin  collision.Point
	KeySize Size
	Gap     int
}

// Engine recomputes the layout only when the frame dimensions change.
// Geometry does not depend on the frame size; the size just keys the cache.
type Engine struct {
	rows     []Row
	geometry Geometry

	cached         []PlacedKey
	cachedW        int
	cachedH        int
	hasCachedFrame bool
}

// NewEngine creates a layout engine for the given schema and geometry
func NewEngine(labels [][]string, geometry Geometry) *Engine {
	return &Engine{
		rows:     NewRows(labels),
		geometry: geometry,
	}
}

// Keys returns the placed keys for a frame of the given size.
// The returned slice is shared between calls and must not be modified.
func (e *Engine) Keys(frameW, frameH int) []PlacedKey {
	if e.hasCachedFrame && e.cachedW == frameW && e.cachedH == frameH {
		return e.cached
	}
	e.cached = ComputeLayout(e.rows, e.geometry.Origin, e.geometry.KeySize, e.geometry.Gap)
	e.cachedW, e.cachedH = frameW, frameH
	e.hasCachedFrame = true
	return e.cached
}

// Rows returns the key schema the engine lays out
func (e *Engine) Rows() []Row {
	return e.rows
}

// Geometry returns the placement configuration
func (e *Engine) Geometry() Geometry {
	return e.geometry
}
