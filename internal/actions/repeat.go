package actions

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type Repeat struct {
	Iterations int          `yaml:"iterations"`
	Actions    []ActionStep `yaml:"actions"`
}

// UnmarshalYAML handles the polymorphic Actions field
func (a *Repeat) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Iterations int         `yaml:"iterations"`
		Actions    []yaml.Node `yaml:"actions"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	a.Iterations = raw.Iterations
	actions, err := unmarshalActionNodes(raw.Actions)
	if err != nil {
		return err
	}
	a.Actions = actions
	return nil
}

func (a *Repeat) Validate(ab *ActionBuilder) error {
	if a.Iterations <= 0 {
		return fmt.Errorf("iterations must be greater than 0")
	}

	if len(a.Actions) == 0 {
		return fmt.Errorf("actions cannot be empty")
	}

	for i, action := range a.Actions {
		if err := action.Validate(ab); err != nil {
			return fmt.Errorf("Repeat (%d) -> nested action %d: %w", a.Iterations, i+1, err)
		}
	}

	return nil
}

func (a *Repeat) Build(ab *ActionBuilder) *ActionBuilder {
	nestedSteps := ab.buildSteps(a.Actions)

	step := Step{
		name: fmt.Sprintf("Repeat (%d)", a.Iterations),
		execute: func(bot BotInterface) error {
			subBuilder := &ActionBuilder{
				steps:  nestedSteps,
				logger: ab.logger,
			}

			for i := 0; i < a.Iterations; i++ {
				if err := subBuilder.executeSteps(bot.Context(), bot); err != nil {
					return fmt.Errorf("repeat iteration %d failed: %w", i+1, err)
				}
			}
			return nil
		},
		issue: a.Validate(ab),
	}
	ab.steps = append(ab.steps, step)
	return ab
}
