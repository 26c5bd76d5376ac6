package cv

import "fmt"

// Region is a screen rectangle (left, top, right, bottom) holding one numeric field.
type Region struct {
	X1, Y1, X2, Y2 int
}

// Point is a single screen coordinate
type Point struct {
	X, Y int
}

// NewRegion creates a new region
func NewRegion(x1, y1, x2, y2 int) Region {
	return Region{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the width of the region
func (r Region) Width() int {
	return r.X2 - r.X1
}

// Height returns the height of the region
func (r Region) Height() int {
	return r.Y2 - r.Y1
}

// IsSet reports whether the region describes a non-empty rectangle.
// The zero Region and inverted corners are treated as unset.
func (r Region) IsSet() bool {
	return r.Width() > 0 && r.Height() > 0
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
