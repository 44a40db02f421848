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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetBestScore(7); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 7 {
		t.Errorf("Expected best score 7 after reopen, got %d", best)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 when no best score is stored, got %d", best)
	}

	for _, v := range []int{3, 12} {
		if err := store.SetBestScore(v); err != nil {
			t.Fatalf("SetBestScore(%d) failed: %v", v, err)
		}
	}

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("Expected best score 12, got %d", best)
	}

	// Stored as a decimal string.
	raw, ok, err := store.Get(BestScoreKey)
	if err != nil || !ok {
		t.Fatalf("Get(%q) = %q, %v, %v", BestScoreKey, raw, ok, err)
	}
	if raw != "12" {
		t.Errorf("Expected raw value \"12\", got %q", raw)
	}
}

func TestStoreMalformedBestScore(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set(BestScoreKey, "lots"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	best, err := store.BestScore()
	if err == nil {
		t.Fatal("Expected an error for a malformed best score")
	}
	if best != 0 {
		t.Errorf("Expected 0 alongside the error, got %d", best)
	}
}

func TestStoreClearBestScore(t *testing.T) {
	store := openTestStore(t)

	store.SetBestScore(40)
	store.SaveScore("s1", 40)

	if err := store.ClearBestScore(); err != nil {
		t.Fatalf("ClearBestScore() failed: %v", err)
	}

	best, _ := store.BestScore()
	if best != 0 {
		t.Errorf("Expected 0 after clear, got %d", best)
	}

	// History is untouched.
	scores, _ := store.TopScores(10)
	if len(scores) != 1 {
		t.Errorf("Expected round history to survive ClearBestScore, got %d rows", len(scores))
	}

	// Clearing twice is fine.
	if err := store.ClearBestScore(); err != nil {
		t.Errorf("second ClearBestScore() failed: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("alpha", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("beta", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	want := []int{500, 200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].SessionID != "beta" {
		t.Errorf("Expected top round from session beta, got %q", scores[0].SessionID)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreSessionScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("a", 3)
	store.SaveScore("b", 9)
	store.SaveScore("a", 1)
	store.SaveScore("a", 5)

	scores, err := store.SessionScores("a")
	if err != nil {
		t.Fatalf("SessionScores() failed: %v", err)
	}

	want := []int{3, 1, 5}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d rounds, got %d", len(want), len(scores))
	}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("round %d = %d, expected %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no rounds, got %d", high)
	}

	store.SaveScore("s", 100)
	store.SaveScore("s", 300)
	store.SaveScore("s", 200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SetBestScore(200)
	store.SaveScore("s", 100)
	store.SaveScore("s", 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	best, _ := store.BestScore()
	if best != 200 {
		t.Errorf("ClearScores() should keep the best score, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("s", 2)
	store.SaveScore("s", 4)
	store.SaveScore("s", 6)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 {
		t.Errorf("Rounds = %d, expected 3", stats.Rounds)
	}
	if stats.HighScore != 6 {
		t.Errorf("HighScore = %d, expected 6", stats.HighScore)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %v, expected 4", stats.AvgScore)
	}
	if stats.TotalScore != 12 {
		t.Errorf("TotalScore = %d, expected 12", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
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

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandHome("~/.gridsnake/scores.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".gridsnake", "scores.db"); got != want {
		t.Errorf("expandHome() = %q, expected %q", got, want)
	}

	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
