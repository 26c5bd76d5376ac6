package bot

import (
	"time"

	"jordanella.com/coc-farm-go/internal/config"
	"jordanella.com/coc-farm-go/internal/loot"
)

// Config is the part of the settings the farming loop runs on
type Config struct {
	Thresholds  loot.Thresholds
	Targets     loot.Amounts
	SkipDelay   time.Duration // wait after skipping a base
	MaxSearches int           // non-qualifying bases before giving up, 0 = never
}

// ConfigFromSettings builds the loop configuration from loaded settings
func ConfigFromSettings(s *config.Settings) Config {
	return Config{
		Thresholds:  s.Thresholds(),
		Targets:     s.Targets(),
		SkipDelay:   time.Duration(s.SkipDelay) * time.Millisecond,
		MaxSearches: s.MaxSearches,
	}
}
