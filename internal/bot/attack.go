package bot

import (
	"github.com/dustin/go-humanize"

	"jordanella.com/coc-farm-go/internal/events"
	"jordanella.com/coc-farm-go/internal/loot"
)

func (b *Bot) resultFields() []loot.Field {
	return []loot.Field{
		{Kind: loot.Gold, Region: b.calibration.ExtGold},
		{Kind: loot.Elixir, Region: b.calibration.ExtElixir},
		{Kind: loot.DarkElixir, Region: b.calibration.ExtDarkElixir},
	}
}

// Attack runs the attack routine against the base on screen
func (b *Bot) Attack() error {
	b.logger.Info().Int("attack", b.state.Attacks+1).Msg("Attacking")
	return b.attack.Execute(b)
}

// CollectLoot reads the results screen and adds it to the session totals
func (b *Bot) CollectLoot() error {
	gained := b.reader.ReadAll("results", b.resultFields())
	b.state.Totals.Add(gained)
	b.state.Attacks++

	totals := b.state.Totals
	remaining := totals.Remaining(b.config.Targets)
	b.logger.Info().
		Int("attack", b.state.Attacks).
		Str("gold", humanize.Comma(int64(totals.Gold))).
		Str("elixir", humanize.Comma(int64(totals.Elixir))).
		Str("dark_elixir", humanize.Comma(int64(totals.DarkElixir))).
		Str("gold_left", humanize.Comma(int64(remaining.Gold))).
		Str("elixir_left", humanize.Comma(int64(remaining.Elixir))).
		Str("dark_left", humanize.Comma(int64(remaining.DarkElixir))).
		Msg("Loot collected")

	b.publish(events.NewAttackCompletedEvent(b.state.Attacks, gained, totals))
	return nil
}
