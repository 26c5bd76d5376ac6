package actions

import (
	"fmt"

	"jordanella.com/coc-farm-go/internal/config"
)

type Deploy struct {
	Line int `yaml:"line"`
}

func (a *Deploy) Validate(ab *ActionBuilder) error {
	if a.Line < 1 || a.Line > config.DeployLineCount {
		return fmt.Errorf("line (%d) must be between 1 and %d", a.Line, config.DeployLineCount)
	}
	return nil
}

func (a *Deploy) Build(ab *ActionBuilder) *ActionBuilder {
	ab.Deploy(a.Line)
	ab.steps[len(ab.steps)-1].issue = a.Validate(ab)
	return ab
}
