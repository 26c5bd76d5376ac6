package database

import (
	"time"

	"github.com/rs/zerolog"

	"jordanella.com/coc-farm-go/internal/events"
	"jordanella.com/coc-farm-go/internal/loot"
)

// Recorder writes session history from bus events. Write failures are
// logged and never stop the bot.
type Recorder struct {
	db        *DB
	bus       events.EventBus
	logger    zerolog.Logger
	sessionID int64
	subs      []events.SubscriptionID
}

// NewRecorder subscribes a recorder to the bus
func NewRecorder(db *DB, bus events.EventBus, logger zerolog.Logger) *Recorder {
	r := &Recorder{
		db:     db,
		bus:    bus,
		logger: logger,
	}

	r.subs = append(r.subs,
		bus.Subscribe(events.EventTypeSessionStarted, r.onSessionStarted),
		bus.Subscribe(events.EventTypeBaseChecked, r.onBaseChecked),
		bus.Subscribe(events.EventTypeBaseFound, r.onBaseChecked),
		bus.Subscribe(events.EventTypeAttackCompleted, r.onAttackCompleted),
		bus.Subscribe(events.EventTypeSessionCompleted, r.onSessionCompleted),
	)
	return r
}

// SessionID returns the row of the session being recorded, 0 before one starts
func (r *Recorder) SessionID() int64 {
	return r.sessionID
}

// Close unsubscribes from the bus
func (r *Recorder) Close() {
	for _, id := range r.subs {
		r.bus.Unsubscribe(id)
	}
	r.subs = nil
}

func (r *Recorder) onSessionStarted(e events.Event) {
	thresholds, _ := e.Data[events.KeyThresholds].(loot.Thresholds)
	targets, _ := e.Data[events.KeyTargets].(loot.Amounts)

	id, err := StartSession(r.db.Conn(), thresholds, targets, e.Timestamp)
	if err != nil {
		r.logger.Warn().Err(err).Msg("Failed to record session start")
		return
	}
	r.sessionID = id
}

func (r *Recorder) onBaseChecked(e events.Event) {
	if r.sessionID == 0 {
		return
	}
	if err := IncrementBasesChecked(r.db.Conn(), r.sessionID); err != nil {
		r.logger.Warn().Err(err).Msg("Failed to record base")
	}
}

func (r *Recorder) onAttackCompleted(e events.Event) {
	if r.sessionID == 0 {
		return
	}
	attack, _ := e.Data[events.KeyAttack].(int)
	gained, _ := e.Data[events.KeyLoot].(loot.Reading)
	totals, _ := e.Data[events.KeyTotals].(loot.Totals)

	if _, err := r.db.RecordAttack(r.sessionID, attack, gained, totals); err != nil {
		r.logger.Warn().Err(err).Int("attack", attack).Msg("Failed to record attack")
	}
}

func (r *Recorder) onSessionCompleted(e events.Event) {
	if r.sessionID == 0 {
		return
	}
	attacks, _ := e.Data[events.KeyAttacks].(int)
	totals, _ := e.Data[events.KeyTotals].(loot.Totals)
	elapsed, _ := e.Data[events.KeyElapsed].(time.Duration)
	errMsg, _ := e.Data[events.KeyError].(string)

	if err := CompleteSession(r.db.Conn(), r.sessionID, totals, attacks, elapsed, errMsg); err != nil {
		r.logger.Warn().Err(err).Msg("Failed to record session completion")
	}
}
