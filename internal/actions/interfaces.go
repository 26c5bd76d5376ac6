package actions

import (
	"context"

	"jordanella.com/coc-farm-go/internal/config"
	"jordanella.com/coc-farm-go/internal/input"
)

// BotInterface defines the capabilities that actions need from the bot.
// It lets actions depend on an interface instead of the concrete bot.Bot type.
type BotInterface interface {
	Context() context.Context
	Input() input.Controller
	Calibration() *config.Calibration

	// CollectLoot reads the results screen and adds it to the session totals
	CollectLoot() error
}
