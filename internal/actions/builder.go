package actions

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type ActionStep interface {
	Validate(ab *ActionBuilder) error
	Build(ab *ActionBuilder) *ActionBuilder
}

// ActionBuilder holds an executable sequence of steps. The bot is not
// required at build time; it is provided to Execute.
type ActionBuilder struct {
	name   string
	steps  []Step
	logger zerolog.Logger
}

// NewActionBuilder creates a new ActionBuilder for building reusable routines
func NewActionBuilder() *ActionBuilder {
	return &ActionBuilder{logger: zerolog.Nop()}
}

// WithLogger sets the logger steps are traced to
func (ab *ActionBuilder) WithLogger(logger zerolog.Logger) *ActionBuilder {
	ab.logger = logger
	return ab
}

// Name returns the routine name the builder was loaded from
func (ab *ActionBuilder) Name() string {
	return ab.name
}

// Len returns the number of top-level steps
func (ab *ActionBuilder) Len() int {
	return len(ab.steps)
}

type Step struct {
	name    string
	execute func(BotInterface) error // Bot is provided at execution time
	issue   error
}

// Execute runs the action sequence on the provided bot. The first failing
// step aborts the sequence.
func (ab *ActionBuilder) Execute(bot BotInterface) error {
	return ab.executeSteps(bot.Context(), bot)
}

func (ab *ActionBuilder) executeSteps(ctx context.Context, bot BotInterface) error {
	for _, step := range ab.steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if step.issue != nil {
			return fmt.Errorf("build configuration error for step '%s': %w", step.name, step.issue)
		}

		ab.logger.Debug().Str("step", step.name).Msg("Executing step")
		if err := step.execute(bot); err != nil {
			return fmt.Errorf("step '%s' failed: %w", step.name, err)
		}
	}
	return nil
}

func (ab *ActionBuilder) buildSteps(actions []ActionStep) []Step {
	// ActionStep.Build appends to its receiver, so build into a scratch builder
	tempBuilder := &ActionBuilder{logger: ab.logger}
	for _, action := range actions {
		action.Build(tempBuilder)
	}
	return tempBuilder.steps
}
