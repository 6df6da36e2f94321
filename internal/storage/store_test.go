package storage

import (
	"context"
	"testing"
)

// runStoreContract checks behavior every backend must share.
func runStoreContract(t *testing.T, store ScoreStore) {
	t.Helper()
	ctx := context.Background()

	high, err := store.HighScore(ctx, "devil")
	if err != nil {
		t.Fatalf("HighScore() on empty store failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty store = %d, expected 0", high)
	}

	runs := []struct{ score, level int }{
		{100, 1},
		{50, 1},
		{720, 6},
		{330, 3},
	}
	seen := make(map[string]bool)
	for _, r := range runs {
		id, err := store.SaveScore(ctx, "devil", r.score, r.level)
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if id == "" || seen[id] {
			t.Errorf("SaveScore() returned empty or duplicate run ID %q", id)
		}
		seen[id] = true
	}
	if _, err := store.SaveScore(ctx, "other", 9999, 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	top, err := store.TopScores(ctx, "devil", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(top))
	}
	wantScores := []int{720, 330, 100}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("TopScores()[%d].Score = %d, expected %d", i, top[i].Score, want)
		}
		if top[i].GameID != "devil" {
			t.Errorf("TopScores()[%d].GameID = %q", i, top[i].GameID)
		}
	}
	if top[0].Level != 6 {
		t.Errorf("top run level = %d, expected 6", top[0].Level)
	}

	all, err := store.TopScores(ctx, "devil", 0)
	if err != nil {
		t.Fatalf("TopScores() with default limit failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("default limit returned %d entries, expected 4", len(all))
	}

	high, err = store.HighScore(ctx, "devil")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 720 {
		t.Errorf("HighScore() = %d, expected 720", high)
	}

	stats, err := store.Stats(ctx, "devil")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 4 || stats.HighScore != 720 || stats.BestLevel != 6 {
		t.Errorf("Stats() = %+v, expected 4 games, high 720, best level 6", stats)
	}
	if stats.AvgScore != 300 {
		t.Errorf("AvgScore = %v, expected 300", stats.AvgScore)
	}

	if err := store.ClearScores(ctx, "devil"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if top, _ := store.TopScores(ctx, "devil", 10); len(top) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(top))
	}
	if high, _ := store.HighScore(ctx, "other"); high != 9999 {
		t.Errorf("clearing one game touched another: high = %d", high)
	}
}
