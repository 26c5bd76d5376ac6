package actions

import (
	"fmt"
	"time"
)

type Sleep struct {
	Duration int `yaml:"duration"` // milliseconds
}

func (a *Sleep) Validate(ab *ActionBuilder) error {
	if a.Duration <= 0 {
		return fmt.Errorf("duration (%d) must be greater than 0", a.Duration)
	}
	return nil
}

func (a *Sleep) Build(ab *ActionBuilder) *ActionBuilder {
	ab.Sleep(time.Duration(a.Duration) * time.Millisecond)
	ab.steps[len(ab.steps)-1].issue = a.Validate(ab)
	return ab
}
