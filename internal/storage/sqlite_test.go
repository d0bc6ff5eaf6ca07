package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.snake/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".snake", "scores.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveResult(MatchResult{
		Score:     7,
		Length:    8,
		EndReason: "collision",
		Duration:  12500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if saved.ID == 0 || saved.MatchID == "" {
		t.Fatalf("SaveResult() did not assign IDs: %+v", saved)
	}
	if saved.Player != LocalPlayer {
		t.Errorf("Player = %q, expected %q", saved.Player, LocalPlayer)
	}

	got, err := store.ResultByMatchID(saved.MatchID)
	if err != nil {
		t.Fatalf("ResultByMatchID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("ResultByMatchID() returned nil")
	}
	if got.Score != 7 || got.Length != 8 || got.EndReason != "collision" || got.Duration != 12500*time.Millisecond {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.ResultByMatchID("nope")
	if err != nil || missing != nil {
		t.Errorf("ResultByMatchID(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)

	r := MatchResult{MatchID: "fixed", Score: 1, Length: 2, EndReason: "collision"}
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(r); err == nil {
		t.Error("expected unique constraint error for duplicate match ID")
	}
}

func TestStoreTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []MatchResult{
		{Player: "ann", Score: 3, Length: 4, EndReason: "collision"},
		{Player: "bob", Score: 10, Length: 11, EndReason: "collision"},
		{Player: "cat", Score: 99, Length: 100, EndReason: "board_full"},
		{Player: "dan", Score: 10, Length: 11, EndReason: "collision"},
		{Player: "eve", Score: 0, Length: 1, EndReason: "collision"},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	// Ties keep insertion order
	if scores[0].Player != "cat" || scores[1].Player != "bob" || scores[2].Player != "dan" {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	all, err := store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("TopScores(0) should default to 10 and return all 5, got %d", len(all))
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveResult(MatchResult{Score: 4, Length: 5, EndReason: "collision", Duration: time.Second})
	store.SaveResult(MatchResult{Score: 8, Length: 9, EndReason: "collision", Duration: 2 * time.Second})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 8 {
		t.Errorf("HighScore() = %d, expected 8", high)
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 8 || stats.AvgScore != 6 || stats.BestLength != 9 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.TotalTime != 3*time.Second {
		t.Errorf("TotalTime = %v, expected 3s", stats.TotalTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveResult(MatchResult{Score: 1, Length: 2, EndReason: "collision"})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
}
