package bot

import (
	"fmt"
	"time"

	"jordanella.com/coc-farm-go/internal/events"
)

// Run searches and attacks until every target is reached. The goal check
// runs before each search, so zero targets return without attacking.
func (b *Bot) Run() (Summary, error) {
	b.state.StartedAt = time.Now()
	b.publish(events.NewSessionStartedEvent(b.config.Thresholds, b.config.Targets))
	b.logger.Info().
		Interface("thresholds", b.config.Thresholds).
		Interface("targets", b.config.Targets).
		Msg("Farming started")

	var err error
	for !b.state.Totals.Reached(b.config.Targets) {
		if _, err = b.FindBase(); err != nil {
			err = fmt.Errorf("search failed: %w", err)
			break
		}
		if err = b.Attack(); err != nil {
			err = fmt.Errorf("attack %d failed: %w", b.state.Attacks+1, err)
			break
		}
	}

	summary := Summary{
		Attacks:  b.state.Attacks,
		Searches: b.state.Searches,
		Totals:   b.state.Totals,
		Elapsed:  time.Since(b.state.StartedAt),
	}
	b.publish(events.NewSessionCompletedEvent(summary.Attacks, summary.Totals, summary.Elapsed, err))

	if err != nil {
		return summary, err
	}

	b.logger.Info().
		Int("attacks", summary.Attacks).
		Msgf("Goals reached in %.1f minutes", summary.Elapsed.Minutes())
	return summary, nil
}
