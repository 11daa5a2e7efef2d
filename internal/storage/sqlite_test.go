package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "scores", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, rec := range []struct {
		score, maxTile int
		won            bool
	}{
		{100, 64, false},
		{50, 32, false},
		{20000, 2048, true},
	} {
		if _, err := store.SaveScore(rec.score, rec.maxTile, rec.won); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	// Sorted descending by score.
	if scores[0].Score != 20000 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not sorted descending: %v", scores)
	}
	if !scores[0].Won || scores[0].MaxTile != 2048 {
		t.Errorf("winning entry = %+v, want Won with max tile 2048", scores[0])
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(i*10, 16, false); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("expected 5 scores, got %d", len(scores))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty store HighScore() = %d, want 0", high)
	}

	store.SaveScore(300, 128, false)
	store.SaveScore(800, 256, false)
	store.SaveScore(500, 256, false)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 800 {
		t.Errorf("HighScore() = %d, want 800", high)
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, 64, false)
	store.SaveScore(20000, 2048, true)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.Games != 2 {
		t.Errorf("Games = %d, want 2", stats.Games)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.HighScore != 20000 {
		t.Errorf("HighScore = %d, want 20000", stats.HighScore)
	}
	if stats.BestTile != 2048 {
		t.Errorf("BestTile = %d, want 2048", stats.BestTile)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, 64, false)
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
