package actions

import (
	"fmt"

	"jordanella.com/coc-farm-go/internal/config"
)

type Click struct {
	Target string `yaml:"target"`
}

func (a *Click) Validate(ab *ActionBuilder) error {
	if a.Target == "" {
		return fmt.Errorf("target cannot be empty")
	}
	if _, ok := config.NewDefaultCalibration().Button(a.Target); !ok {
		return fmt.Errorf("unknown target '%s' (available targets: %v)", a.Target, config.ButtonNames)
	}
	return nil
}

func (a *Click) Build(ab *ActionBuilder) *ActionBuilder {
	ab.Click(a.Target)
	ab.steps[len(ab.steps)-1].issue = a.Validate(ab)
	return ab
}
