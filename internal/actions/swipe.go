package actions

import (
	"fmt"

	"jordanella.com/coc-farm-go/internal/cv"
)

// Swipe drags between two raw screen coordinates, e.g. to pan the camera
type Swipe struct {
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
	X2 int `yaml:"x2"`
	Y2 int `yaml:"y2"`
}

func (a *Swipe) Validate(ab *ActionBuilder) error {
	if a.X1 < 0 || a.Y1 < 0 || a.X2 < 0 || a.Y2 < 0 {
		return fmt.Errorf("coordinates (x1=%d, y1=%d, x2=%d, y2=%d) must be non-negative", a.X1, a.Y1, a.X2, a.Y2)
	}
	return nil
}

func (a *Swipe) Build(ab *ActionBuilder) *ActionBuilder {
	from := cv.Point{X: a.X1, Y: a.Y1}
	to := cv.Point{X: a.X2, Y: a.Y2}

	step := Step{
		name: fmt.Sprintf("Swipe %s->%s", from, to),
		execute: func(bot BotInterface) error {
			return bot.Input().Drag(from, to)
		},
		issue: a.Validate(ab),
	}
	ab.steps = append(ab.steps, step)
	return ab
}
