package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/progress"
	"github.com/vovakirdan/kidsquids/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreKeyValue(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.GetValue("anna", "missing"); err != nil || ok {
		t.Errorf("GetValue(missing) = ok %v, err %v", ok, err)
	}

	if err := store.SetValue("anna", "k", "v1"); err != nil {
		t.Fatalf("SetValue() failed: %v", err)
	}
	if err := store.SetValue("anna", "k", "v2"); err != nil {
		t.Fatalf("SetValue() overwrite failed: %v", err)
	}
	if err := store.SetValue("ben", "k", "other"); err != nil {
		t.Fatalf("SetValue() failed: %v", err)
	}

	v, ok, err := store.GetValue("anna", "k")
	if err != nil || !ok || v != "v2" {
		t.Errorf("GetValue() = %q, %v, %v; expected v2", v, ok, err)
	}
	v, _, _ = store.GetValue("ben", "k")
	if v != "other" {
		t.Errorf("profiles must not share values, got %q", v)
	}

	profiles, err := store.Profiles()
	if err != nil {
		t.Fatalf("Profiles() failed: %v", err)
	}
	if len(profiles) != 2 || profiles[0] != "anna" || profiles[1] != "ben" {
		t.Errorf("Profiles() = %v", profiles)
	}
}

func TestProfileBacksProgressStore(t *testing.T) {
	store := openTestStore(t)
	profile := store.Profile("anna")

	ps := progress.Open(profile, nil)
	ps.AddCoins(25)
	ps.UpdateLevelProgress(catalog.DifficultyStarter, catalog.ModeClick, 2, 3, 30)

	reopened := progress.Open(store.Profile("anna"), nil)
	if reopened.Coins() != 25 {
		t.Errorf("Coins() = %d after reopen, expected 25", reopened.Coins())
	}
	if p := reopened.LevelProgress(catalog.DifficultyStarter, catalog.ModeClick); p.Level != 2 {
		t.Errorf("Level = %d after reopen, expected 2", p.Level)
	}

	other := progress.Open(store.Profile("ben"), nil)
	if other.Coins() != 0 {
		t.Error("a new profile should start from defaults")
	}
}

func TestStoreAttempts(t *testing.T) {
	store := openTestStore(t)

	attempts := []Attempt{
		{Profile: "anna", Mode: catalog.ModeClick, Difficulty: catalog.DifficultyStarter, Level: 1, Score: 30, Stars: 3, Coins: 2, Success: true, Duration: 12 * time.Second},
		{Profile: "anna", Mode: catalog.ModeCatch, Difficulty: catalog.DifficultyStarter, Level: 1, Score: 10, Duration: 30 * time.Second},
		{Profile: "ben", Mode: catalog.ModeClick, Difficulty: catalog.DifficultyStarter, Level: 1, Score: 20},
	}
	for _, a := range attempts {
		if _, err := store.SaveAttempt(a); err != nil {
			t.Fatalf("SaveAttempt() failed: %v", err)
		}
	}

	recent, err := store.RecentAttempts("anna", 10)
	if err != nil {
		t.Fatalf("RecentAttempts() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 attempts, got %d", len(recent))
	}

	// Newest first
	if recent[0].Mode != catalog.ModeCatch || recent[0].Success {
		t.Errorf("recent[0] = %+v, expected the failed catch attempt", recent[0])
	}
	first := recent[1]
	if !first.Success || first.Score != 30 || first.Stars != 3 || first.Coins != 2 {
		t.Errorf("recent[1] = %+v", first)
	}
	if first.Duration != 12*time.Second {
		t.Errorf("Duration = %v, expected 12s", first.Duration)
	}
	if first.SessionID == "" {
		t.Error("missing session ID should be generated")
	}

	limited, err := store.RecentAttempts("anna", 1)
	if err != nil || len(limited) != 1 {
		t.Errorf("RecentAttempts(limit 1) = %d rows, %v", len(limited), err)
	}

	if err := store.ClearAttempts("anna"); err != nil {
		t.Fatalf("ClearAttempts() failed: %v", err)
	}
	if recent, _ := store.RecentAttempts("anna", 10); len(recent) != 0 {
		t.Errorf("Expected no attempts after clear, got %d", len(recent))
	}
	if recent, _ := store.RecentAttempts("ben", 10); len(recent) != 1 {
		t.Error("clearing one profile must not touch another")
	}
}

func TestStoreAttemptStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 30, 20} {
		_, err := store.SaveAttempt(Attempt{
			Profile:    "anna",
			Mode:       catalog.ModeClick,
			Difficulty: catalog.DifficultyStarter,
			Level:      1,
			Score:      score,
			Success:    score == 30,
		})
		if err != nil {
			t.Fatalf("SaveAttempt() failed: %v", err)
		}
	}

	stats, err := store.AttemptStats("anna")
	if err != nil {
		t.Fatalf("AttemptStats() failed: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("Expected 1 stats row, got %d", len(stats))
	}
	s := stats[0]
	if s.Attempts != 3 || s.Successes != 1 || s.BestScore != 30 || s.AvgScore != 20 {
		t.Errorf("stats = %+v", s)
	}
}

func TestProfileRecordAttempt(t *testing.T) {
	store := openTestStore(t)
	profile := store.Profile("anna")

	err := profile.RecordAttempt(session.AttemptData{
		SessionID:  "3f0c1c5e-0000-4000-8000-000000000001",
		Mode:       catalog.ModeDrag,
		Difficulty: catalog.DifficultyExplorer,
		Level:      2,
		Score:      60,
		Stars:      3,
		Coins:      5,
		Success:    true,
		Duration:   45 * time.Second,
	})
	if err != nil {
		t.Fatalf("RecordAttempt() failed: %v", err)
	}

	recent, err := store.RecentAttempts("anna", 1)
	if err != nil || len(recent) != 1 {
		t.Fatalf("RecentAttempts() = %d rows, %v", len(recent), err)
	}
	if recent[0].SessionID != "3f0c1c5e-0000-4000-8000-000000000001" || recent[0].Mode != catalog.ModeDrag {
		t.Errorf("recorded attempt = %+v", recent[0])
	}
}
