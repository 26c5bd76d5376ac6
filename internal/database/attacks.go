package database

import (
	"database/sql"
	"fmt"
	"time"

	"jordanella.com/coc-farm-go/internal/loot"
)

// Attack is the loot collected by one attack
type Attack struct {
	ID           int64
	SessionID    int64
	AttackNumber int
	Loot         loot.Amounts
	CompletedAt  time.Time
}

// RecordAttack stores the loot of one attack and updates the session totals
func (db *DB) RecordAttack(sessionID int64, attackNumber int, gained loot.Reading, totals loot.Totals) (int64, error) {
	var attackID int64
	err := db.ExecTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			INSERT INTO attacks (session_id, attack_number, gold, elixir, dark_elixir, completed_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, sessionID, attackNumber,
			gained.Get(loot.Gold), gained.Get(loot.Elixir), gained.Get(loot.DarkElixir),
			time.Now())
		if err != nil {
			return fmt.Errorf("failed to insert attack: %w", err)
		}

		attackID, err = result.LastInsertId()
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			UPDATE sessions
			SET attacks = ?, gold = ?, elixir = ?, dark_elixir = ?
			WHERE id = ?
		`, attackNumber, totals.Gold, totals.Elixir, totals.DarkElixir, sessionID)
		if err != nil {
			return fmt.Errorf("failed to update session totals: %w", err)
		}
		return nil
	})

	return attackID, err
}

// ListAttacks returns the attacks of a session in order
func ListAttacks(db *sql.DB, sessionID int64) ([]*Attack, error) {
	rows, err := db.Query(`
		SELECT id, session_id, attack_number, gold, elixir, dark_elixir, completed_at
		FROM attacks
		WHERE session_id = ?
		ORDER BY attack_number
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attacks: %w", err)
	}
	defer rows.Close()

	var attacks []*Attack
	for rows.Next() {
		a := &Attack{}
		if err := rows.Scan(&a.ID, &a.SessionID, &a.AttackNumber,
			&a.Loot.Gold, &a.Loot.Elixir, &a.Loot.DarkElixir, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attack: %w", err)
		}
		attacks = append(attacks, a)
	}

	return attacks, rows.Err()
}
