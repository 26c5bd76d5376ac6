package bot

import (
	"time"

	"jordanella.com/coc-farm-go/internal/loot"
)

// State tracks the progress of one farming session. It lives only in memory.
type State struct {
	StartedAt time.Time
	Searches  int // bases read across the session
	Attacks   int
	Totals    loot.Totals
}

// Summary reports a finished session
type Summary struct {
	Attacks  int
	Searches int
	Totals   loot.Totals
	Elapsed  time.Duration
}
