package bot

import (
	"errors"
	"fmt"

	"jordanella.com/coc-farm-go/internal/events"
	"jordanella.com/coc-farm-go/internal/loot"
)

// ErrSearchLimit is returned when MaxSearches bases were skipped in a row
var ErrSearchLimit = errors.New("search limit reached")

func (b *Bot) searchFields() []loot.Field {
	return []loot.Field{
		{Kind: loot.Gold, Region: b.calibration.Gold},
		{Kind: loot.Elixir, Region: b.calibration.Elixir},
		{Kind: loot.DarkElixir, Region: b.calibration.DarkElixir},
	}
}

// FindBase reads the base on screen and skips to the next one until a base
// meets any threshold, then returns its reading.
func (b *Bot) FindBase() (loot.Reading, error) {
	checked := 0
	for {
		if err := b.ctx.Err(); err != nil {
			return nil, err
		}

		reading := b.reader.ReadAll("search", b.searchFields())
		checked++
		b.state.Searches++

		found := b.config.Thresholds.Meets(reading)
		b.publish(events.NewBaseCheckedEvent(reading, b.state.Searches, found))

		if found {
			b.logger.Info().Stringer("loot", reading).Int("searches", checked).Msg("Found base")
			return reading, nil
		}

		if b.config.MaxSearches > 0 && checked >= b.config.MaxSearches {
			return nil, fmt.Errorf("%w after %d bases", ErrSearchLimit, checked)
		}

		b.logger.Info().Stringer("loot", reading).Msg("Skipping base")
		if err := b.input.Click(b.calibration.NextBtn); err != nil {
			return nil, fmt.Errorf("failed to skip base: %w", err)
		}
		if err := b.sleep(b.config.SkipDelay); err != nil {
			return nil, err
		}
	}
}
