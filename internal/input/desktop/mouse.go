package desktop

import "github.com/go-vgo/robotgo"

// mouse is the slice of robotgo the Robot drives
type mouse interface {
	ScreenSize() (int, int)
	Location() (int, int)
	Move(x, y int)
	MoveSmooth(x, y int)
	Click()
	Toggle(args ...interface{}) error
}

type robotgoMouse struct{}

func (robotgoMouse) ScreenSize() (int, int) { return robotgo.GetScreenSize() }
func (robotgoMouse) Location() (int, int)   { return robotgo.Location() }
func (robotgoMouse) Move(x, y int)          { robotgo.Move(x, y) }
func (robotgoMouse) MoveSmooth(x, y int)    { robotgo.MoveSmooth(x, y) }
func (robotgoMouse) Click()                 { robotgo.Click("left") }

func (robotgoMouse) Toggle(args ...interface{}) error {
	return robotgo.Toggle(args...)
}
