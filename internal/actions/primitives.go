package actions

import (
	"context"
	"fmt"
	"time"

	"jordanella.com/coc-farm-go/internal/config"
)

// Basic building blocks

// Click clicks the named calibrated button
func (ab *ActionBuilder) Click(target string) *ActionBuilder {
	step := Step{
		name: fmt.Sprintf("Click (%s)", target),
		execute: func(bot BotInterface) error {
			p, ok := bot.Calibration().Button(target)
			if !ok {
				return fmt.Errorf("unknown button %q", target)
			}
			return bot.Input().Click(*p)
		},
	}
	ab.steps = append(ab.steps, step)
	return ab
}

// Deploy clicks the start of a deployment line, then drags along it
func (ab *ActionBuilder) Deploy(line int) *ActionBuilder {
	step := Step{
		name: fmt.Sprintf("Deploy (line %d)", line),
		execute: func(bot BotInterface) error {
			l, ok := bot.Calibration().DeployLine(line)
			if !ok {
				return fmt.Errorf("deployment line %d out of range 1..%d", line, config.DeployLineCount)
			}
			if err := bot.Input().Click(l.Start); err != nil {
				return err
			}
			return bot.Input().Drag(l.Start, l.End)
		},
	}
	ab.steps = append(ab.steps, step)
	return ab
}

// Sleep waits for d, returning early if the bot is stopped
func (ab *ActionBuilder) Sleep(d time.Duration) *ActionBuilder {
	step := Step{
		name: fmt.Sprintf("Sleep (%v)", d),
		execute: func(bot BotInterface) error {
			return sleepContext(bot.Context(), d)
		},
	}
	ab.steps = append(ab.steps, step)
	return ab
}

// CollectLoot reads the results screen into the session totals
func (ab *ActionBuilder) CollectLoot() *ActionBuilder {
	step := Step{
		name: "CollectLoot",
		execute: func(bot BotInterface) error {
			return bot.CollectLoot()
		},
	}
	ab.steps = append(ab.steps, step)
	return ab
}

// Custom

// Do appends an arbitrary step
func (ab *ActionBuilder) Do(name string, fn func(BotInterface) error) *ActionBuilder {
	ab.steps = append(ab.steps, Step{name: name, execute: fn})
	return ab
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
