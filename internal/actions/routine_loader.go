package actions

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type RoutineLoader struct {
	logger zerolog.Logger
}

func NewRoutineLoader() *RoutineLoader {
	return &RoutineLoader{logger: zerolog.Nop()}
}

// WithLogger sets the logger handed to loaded builders
func (rl *RoutineLoader) WithLogger(logger zerolog.Logger) *RoutineLoader {
	rl.logger = logger
	return rl
}

// LoadFromFile reads a YAML file and builds it with LoadFromBytes
func (rl *RoutineLoader) LoadFromFile(filepath string) (*ActionBuilder, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read routine file %s: %w", filepath, err)
	}
	return rl.LoadFromBytes(data)
}

// LoadFromBytes unmarshals a Routine, validates all actions, and builds the
// executable ActionBuilder. Any invalid step fails the whole load.
func (rl *RoutineLoader) LoadFromBytes(data []byte) (*ActionBuilder, error) {
	var routine Routine
	if err := yaml.Unmarshal(data, &routine); err != nil {
		return nil, fmt.Errorf("failed to unmarshal routine YAML: %w", err)
	}
	if len(routine.Steps) == 0 {
		return nil, fmt.Errorf("routine '%s' has no steps", routine.RoutineName)
	}

	ab := NewActionBuilder().WithLogger(rl.logger)
	ab.name = routine.RoutineName

	for i, action := range routine.Steps {
		if err := action.Validate(ab); err != nil {
			return nil, fmt.Errorf("routine '%s' step %d validation failed: %w", routine.RoutineName, i+1, err)
		}
		ab = action.Build(ab)
	}

	return ab, nil
}
