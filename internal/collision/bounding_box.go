package collision

// Point represents a 2D pixel coordinate
type Point struct {
	X, Y int
}

// Box represents an axis-aligned rectangle in frame pixels.
// (X1, Y1) is the top-left corner and (X2, Y2) the bottom-right one.
type Box struct {
	X1, Y1 int
	X2, Y2 int
}

// NewBox creates a box from its top-left corner and size
func NewBox(x, y, width, height int) Box {
	return Box{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Width returns the horizontal extent of the box
func (b Box) Width() int {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the box
func (b Box) Height() int {
	return b.Y2 - b.Y1
}

// Center returns the middle of the box, rounded down
func (b Box) Center() Point {
	return Point{X: b.X1 + b.Width()/2, Y: b.Y1 + b.Height()/2}
}

// Contains checks if a point lies strictly inside the box.
// A point on any edge is outside, so two keys sharing an edge pixel never both claim it.
func (b Box) Contains(p Point) bool {
	return b.X1 < p.X && p.X < b.X2 && b.Y1 < p.Y && p.Y < b.Y2
}

// Overlaps checks if two boxes share interior area. Touching edges do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X1 < other.X2 && other.X1 < b.X2 && b.Y1 < other.Y2 && other.Y1 < b.Y2
}

// Translate returns the box moved by the given offset
func (b Box) Translate(dx, dy int) Box {
	return Box{X1: b.X1 + dx, Y1: b.Y1 + dy, X2: b.X2 + dx, Y2: b.Y2 + dy}
}

// Inset returns the box shrunk by n pixels on every side
func (b Box) Inset(n int) Box {
	return Box{X1: b.X1 + n, Y1: b.Y1 + n, X2: b.X2 - n, Y2: b.Y2 - n}
}
