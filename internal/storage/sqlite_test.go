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

func saveRun(t *testing.T, store *Store, pack string, score, level int, outcome Outcome) int64 {
	t.Helper()
	id, err := store.SaveRun(Run{PackID: pack, Player: "tester", Score: score, LevelReached: level, Outcome: outcome, Ticks: 600})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "classic", 100, 1, OutcomeDied)
	saveRun(t, store, "classic", 50, 1, OutcomeDied)
	saveRun(t, store, "classic", 200, 3, OutcomeWon)
	saveRun(t, store, "caverns", 500, 2, OutcomeWon)

	runs, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	best := runs[0]
	if best.Outcome != OutcomeWon || best.LevelReached != 3 || best.Player != "tester" || best.Ticks != 600 {
		t.Errorf("Run fields not round-tripped: %+v", best)
	}

	caverns, err := store.TopScores("caverns", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(caverns) != 1 {
		t.Errorf("Expected 1 caverns run, got %d", len(caverns))
	}
}

func TestStoreSaveRunRequiresPack(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("Expected error for run without pack id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		saveRun(t, store, "test", (i+1)*100, 1, OutcomeDied)
	}

	runs, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreTopScoresTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	first := saveRun(t, store, "test", 100, 1, OutcomeDied)
	second := saveRun(t, store, "test", 100, 2, OutcomeDied)

	runs, err := store.TopScores("test", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("Expected earlier run first on ties, got %d then %d", runs[0].ID, runs[1].ID)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty pack, got %d", high)
	}

	saveRun(t, store, "classic", 100, 1, OutcomeDied)
	saveRun(t, store, "classic", 300, 2, OutcomeDied)
	saveRun(t, store, "classic", 200, 1, OutcomeDied)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "classic", 100, 1, OutcomeDied)
	saveRun(t, store, "classic", 200, 1, OutcomeDied)
	saveRun(t, store, "skyline", 300, 1, OutcomeDied)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(classic))
	}

	skyline, _ := store.TopScores("skyline", 10)
	if len(skyline) != 1 {
		t.Errorf("Skyline runs should not be affected by clearing classic")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 25 {
		saveRun(t, store, "classic", i, 1, OutcomeDied)
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Fatalf("Expected default limit of 20, got %d", len(runs))
	}
	if runs[0].Score != 24 {
		t.Errorf("Expected newest run first, got score %d", runs[0].Score)
	}
}

func TestStorePackStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.PackStats("classic")
	if err != nil {
		t.Fatalf("PackStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 {
		t.Errorf("Expected zero stats for empty pack, got %+v", empty)
	}

	saveRun(t, store, "classic", 100, 1, OutcomeDied)
	saveRun(t, store, "classic", 300, 3, OutcomeWon)
	saveRun(t, store, "caverns", 50, 1, OutcomeDied)

	stats, err := store.PackStats("classic")
	if err != nil {
		t.Fatalf("PackStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Wins != 1 || stats.HighScore != 300 || stats.BestLevel != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}

	all, err := store.AllPackStats()
	if err != nil {
		t.Fatalf("AllPackStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 packs, got %d", len(all))
	}
	if all["caverns"].Runs != 1 || all["caverns"].Wins != 0 {
		t.Errorf("Unexpected caverns stats: %+v", all["caverns"])
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
