package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"jordanella.com/coc-farm-go/internal/events"
	"jordanella.com/coc-farm-go/internal/loot"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "data", "history.db")

	db, err := Open(dbPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func TestDatabaseInitialization(t *testing.T) {
	db := openTestDB(t)

	version, err := db.GetVersion()
	if err != nil {
		t.Fatalf("Failed to get version: %v", err)
	}
	if version != LatestVersion() {
		t.Errorf("Expected version %d, got %d", LatestVersion(), version)
	}

	if _, err := os.Stat(db.Path()); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	// Running again is a no-op
	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats["sessions"] != 0 || stats["attacks"] != 0 {
		t.Errorf("expected empty tables, got %v", stats)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	thresholds := loot.Thresholds{Gold: 500000, Elixir: 500000, DarkElixir: 50000}
	targets := loot.Amounts{Gold: 1000000, Elixir: 1000000, DarkElixir: 500}

	id, err := StartSession(db.Conn(), thresholds, targets, time.Now())
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := IncrementBasesChecked(db.Conn(), id); err != nil {
			t.Fatalf("IncrementBasesChecked failed: %v", err)
		}
	}

	totals := loot.Totals{}
	first := loot.Reading{loot.Gold: 400000, loot.Elixir: 350000, loot.DarkElixir: 200}
	totals.Add(first)
	if _, err := db.RecordAttack(id, 1, first, totals); err != nil {
		t.Fatalf("RecordAttack failed: %v", err)
	}
	second := loot.Reading{loot.Gold: 700000, loot.Elixir: 800000, loot.DarkElixir: 400}
	totals.Add(second)
	if _, err := db.RecordAttack(id, 2, second, totals); err != nil {
		t.Fatalf("RecordAttack failed: %v", err)
	}

	// Attack numbers are unique per session
	if _, err := db.RecordAttack(id, 2, second, totals); err == nil {
		t.Error("expected duplicate attack number to fail")
	}

	if err := CompleteSession(db.Conn(), id, totals, 2, 95*time.Second, ""); err != nil {
		t.Fatalf("CompleteSession failed: %v", err)
	}

	s, err := GetSession(db.Conn(), id)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if s.Status != "completed" || s.BasesChecked != 3 || s.Attacks != 2 {
		t.Errorf("unexpected session %+v", s)
	}
	if s.Totals != totals || s.Thresholds != thresholds || s.Targets != targets {
		t.Errorf("amounts mismatch: %+v", s)
	}
	if s.DurationSeconds == nil || *s.DurationSeconds != 95 || s.ErrorMessage != nil {
		t.Errorf("unexpected completion fields: %+v", s)
	}

	attacks, err := ListAttacks(db.Conn(), id)
	if err != nil {
		t.Fatalf("ListAttacks failed: %v", err)
	}
	if len(attacks) != 2 || attacks[1].Loot.Gold != 700000 {
		t.Errorf("unexpected attacks %+v", attacks)
	}
}

func TestCompleteSessionFailed(t *testing.T) {
	db := openTestDB(t)

	id, err := StartSession(db.Conn(), loot.Thresholds{}, loot.Amounts{}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if err := CompleteSession(db.Conn(), id, loot.Totals{}, 0, time.Second, "search limit reached"); err != nil {
		t.Fatal(err)
	}

	s, err := GetSession(db.Conn(), id)
	if err != nil {
		t.Fatal(err)
	}
	if s.Status != "failed" || s.ErrorMessage == nil || *s.ErrorMessage != "search limit reached" {
		t.Errorf("unexpected session %+v", s)
	}

	if _, err := GetSession(db.Conn(), id+100); err == nil {
		t.Error("expected error for missing session")
	}
}

func TestRecorderFromEvents(t *testing.T) {
	db := openTestDB(t)
	bus := events.NewEventBus(16, zerolog.Nop())
	recorder := NewRecorder(db, bus, zerolog.Nop())

	totals := loot.Totals{}
	gained := loot.Reading{loot.Gold: 300000, loot.Elixir: 250000, loot.DarkElixir: 1500}
	totals.Add(gained)

	bus.Publish(events.NewSessionStartedEvent(loot.Thresholds{Gold: 1}, loot.Amounts{Gold: 2}))
	bus.Publish(events.NewBaseCheckedEvent(loot.NewReading(), 1, false))
	bus.Publish(events.NewBaseCheckedEvent(gained, 2, true))
	bus.Publish(events.NewAttackCompletedEvent(1, gained, totals))
	bus.Publish(events.NewSessionCompletedEvent(1, totals, 2*time.Minute, errors.New("interrupted")))
	bus.Stop()
	recorder.Close()

	if recorder.SessionID() == 0 {
		t.Fatal("session was not recorded")
	}

	s, err := GetSession(db.Conn(), recorder.SessionID())
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if s.BasesChecked != 2 || s.Attacks != 1 || s.Totals != totals || s.Status != "failed" {
		t.Errorf("unexpected session %+v", s)
	}
	if s.Thresholds.Gold != 1 || s.Targets.Gold != 2 {
		t.Errorf("configuration not recorded: %+v", s)
	}

	attacks, err := ListAttacks(db.Conn(), recorder.SessionID())
	if err != nil || len(attacks) != 1 || attacks[0].Loot.DarkElixir != 1500 {
		t.Errorf("ListAttacks = %+v, %v", attacks, err)
	}
}

func TestOpenHistoryRecordsIntoFreshDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "history.db")
	gained := loot.Reading{loot.Gold: 600000, loot.Elixir: 10, loot.DarkElixir: 0}
	totals := loot.Totals{}
	totals.Add(gained)

	for run := 1; run <= 2; run++ {
		bus := events.NewEventBus(16, zerolog.Nop())
		history, err := OpenHistory(dbPath, bus, zerolog.Nop())
		if err != nil {
			t.Fatalf("run %d: OpenHistory failed: %v", run, err)
		}

		bus.Publish(events.NewSessionStartedEvent(loot.Thresholds{Gold: 500000}, loot.Amounts{Gold: 600000}))
		bus.Publish(events.NewAttackCompletedEvent(1, gained, totals))
		bus.Stop()

		id := history.SessionID()
		if id == 0 {
			t.Fatalf("run %d: session row was not created", run)
		}

		s, err := GetSession(history.db.Conn(), id)
		if err != nil {
			t.Fatalf("run %d: GetSession failed: %v", run, err)
		}
		if s.Attacks != 1 || s.Totals != totals {
			t.Errorf("run %d: unexpected session %+v", run, s)
		}

		stats, err := history.db.GetStats()
		if err != nil || stats["sessions"] != int64(run) || stats["attacks"] != int64(run) {
			t.Errorf("run %d: GetStats = %v, %v", run, stats, err)
		}

		if err := history.Close(); err != nil {
			t.Fatalf("run %d: Close failed: %v", run, err)
		}
	}
}

func TestOpenHistoryBadPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	bus := events.NewEventBus(1, zerolog.Nop())
	defer bus.Stop()

	if _, err := OpenHistory(filepath.Join(blocker, "history.db"), bus, zerolog.Nop()); err == nil {
		t.Error("expected error when the directory cannot be created")
	}
	if n := bus.GetSubscriberCount(events.EventTypeSessionStarted); n != 0 {
		t.Errorf("failed open must not subscribe, got %d subscribers", n)
	}
}
