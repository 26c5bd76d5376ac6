package database

import (
	"database/sql"
	"fmt"
	"time"

	"jordanella.com/coc-farm-go/internal/loot"
)

// Session represents one farming run
type Session struct {
	ID              int64
	Status          string // 'running', 'completed', 'failed'
	Thresholds      loot.Thresholds
	Targets         loot.Amounts
	BasesChecked    int
	Attacks         int
	Totals          loot.Totals
	StartedAt       time.Time
	CompletedAt     *time.Time
	DurationSeconds *int
	ErrorMessage    *string
}

// StartSession records the start of a farming run
func StartSession(db *sql.DB, thresholds loot.Thresholds, targets loot.Amounts, startedAt time.Time) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO sessions (
			gold_threshold, elixir_threshold, dark_threshold,
			target_gold, target_elixir, target_dark,
			started_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, thresholds.Gold, thresholds.Elixir, thresholds.DarkElixir,
		targets.Gold, targets.Elixir, targets.DarkElixir,
		startedAt)

	if err != nil {
		return 0, fmt.Errorf("failed to start session: %w", err)
	}

	return result.LastInsertId()
}

// IncrementBasesChecked counts one more base read during search
func IncrementBasesChecked(db *sql.DB, sessionID int64) error {
	_, err := db.Exec(`
		UPDATE sessions SET bases_checked = bases_checked + 1 WHERE id = ?
	`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update bases checked: %w", err)
	}
	return nil
}

// CompleteSession marks a session finished. A non-empty errorMessage marks it failed.
func CompleteSession(db *sql.DB, sessionID int64, totals loot.Totals, attacks int, duration time.Duration, errorMessage string) error {
	status := "completed"
	var errMsg *string
	if errorMessage != "" {
		status = "failed"
		errMsg = &errorMessage
	}

	_, err := db.Exec(`
		UPDATE sessions
		SET status = ?,
			attacks = ?,
			gold = ?,
			elixir = ?,
			dark_elixir = ?,
			completed_at = ?,
			duration_seconds = ?,
			error_message = ?
		WHERE id = ?
	`, status, attacks, totals.Gold, totals.Elixir, totals.DarkElixir,
		time.Now(), int(duration.Seconds()), errMsg, sessionID)

	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	return nil
}

// GetSession loads a session by ID
func GetSession(db *sql.DB, sessionID int64) (*Session, error) {
	s := &Session{}
	var completedAt sql.NullTime
	var duration sql.NullInt64
	var errMsg sql.NullString

	err := db.QueryRow(`
		SELECT id, status,
			gold_threshold, elixir_threshold, dark_threshold,
			target_gold, target_elixir, target_dark,
			bases_checked, attacks, gold, elixir, dark_elixir,
			started_at, completed_at, duration_seconds, error_message
		FROM sessions
		WHERE id = ?
	`, sessionID).Scan(
		&s.ID, &s.Status,
		&s.Thresholds.Gold, &s.Thresholds.Elixir, &s.Thresholds.DarkElixir,
		&s.Targets.Gold, &s.Targets.Elixir, &s.Targets.DarkElixir,
		&s.BasesChecked, &s.Attacks, &s.Totals.Gold, &s.Totals.Elixir, &s.Totals.DarkElixir,
		&s.StartedAt, &completedAt, &duration, &errMsg,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session not found: %d", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if completedAt.Valid {
		s.CompletedAt = &completedAt.Time
	}
	if duration.Valid {
		d := int(duration.Int64)
		s.DurationSeconds = &d
	}
	if errMsg.Valid {
		s.ErrorMessage = &errMsg.String
	}

	return s, nil
}
