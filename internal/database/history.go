package database

import (
	"fmt"

	"github.com/rs/zerolog"

	"jordanella.com/coc-farm-go/internal/events"
)

// History is a migrated history database with a recorder subscribed to
// the bus
type History struct {
	db       *DB
	recorder *Recorder
	logger   zerolog.Logger
}

// OpenHistory opens the database at dbPath, brings the schema up to date
// and starts recording events from bus
func OpenHistory(dbPath string, bus events.EventBus, logger zerolog.Logger) (*History, error) {
	db, err := Open(dbPath, logger)
	if err != nil {
		return nil, err
	}

	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	version, err := db.GetVersion()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info().Str("path", db.Path()).Int("version", version).Msg("History database ready")

	return &History{
		db:       db,
		recorder: NewRecorder(db, bus, logger),
		logger:   logger,
	}, nil
}

// SessionID returns the row of the session being recorded, 0 before one starts
func (h *History) SessionID() int64 {
	return h.recorder.SessionID()
}

// Close unsubscribes the recorder and closes the database. Stop the bus
// first so queued events are written.
func (h *History) Close() error {
	h.recorder.Close()

	if stats, err := h.db.GetStats(); err == nil {
		h.logger.Info().
			Int64("sessions", stats["sessions"]).
			Int64("attacks", stats["attacks"]).
			Msg("History totals")
	}
	return h.db.Close()
}
