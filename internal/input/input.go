package input

import (
	"fmt"

	"jordanella.com/coc-farm-go/internal/cv"
)

// Controller injects clicks and drags into the game
type Controller interface {
	Click(p cv.Point) error
	Drag(from, to cv.Point) error
}

// Locator reports the current cursor position
type Locator interface {
	Position() cv.Point
}

// OutOfBoundsError is returned for a point outside the screen
type OutOfBoundsError struct {
	Point         cv.Point
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("point %s outside screen %dx%d", e.Point, e.Width, e.Height)
}
