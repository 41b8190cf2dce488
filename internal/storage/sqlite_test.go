package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	board := BoardKey(8, 8, 6)

	for _, entry := range []struct{ score, moves int }{
		{100, 12}, {50, 7}, {200, 20},
	} {
		if _, err := store.SaveScore(board, entry.score, entry.moves); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different board profile
	if _, err := store.SaveScore(BoardKey(6, 6, 5), 500, 40); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(board, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Moves != 20 {
		t.Errorf("Expected top entry with 20 moves, got %d", scores[0].Moves)
	}

	other, err := store.TopScores(BoardKey(6, 6, 5), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for the 6x6 board, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	board := BoardKey(8, 8, 6)
	for i := 0; i < 5; i++ {
		store.SaveScore(board, (i+1)*100, i+1)
	}

	scores, err := store.TopScores(board, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	board := BoardKey(8, 8, 6)

	// No scores yet
	high, err := store.HighScore(board)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 high score for empty store, got %d", high)
	}

	store.SaveScore(board, 150, 9)
	store.SaveScore(board, 320, 25)
	store.SaveScore(board, 90, 5)

	high, err = store.HighScore(board)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 320 {
		t.Errorf("Expected high score 320, got %d", high)
	}
}

func TestStoreBoardsAndStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore(BoardKey(8, 8, 6), 100, 10)
	store.SaveScore(BoardKey(8, 8, 6), 300, 22)
	store.SaveScore(BoardKey(6, 6, 5), 40, 4)

	boards, err := store.Boards()
	if err != nil {
		t.Fatalf("Boards() failed: %v", err)
	}
	if len(boards) != 2 {
		t.Errorf("Expected 2 board profiles, got %d", len(boards))
	}

	stats, err := store.GetBoardStats(BoardKey(8, 8, 6))
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalMoves != 32 {
		t.Errorf("TotalMoves = %d, want 32", stats.TotalMoves)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	board := BoardKey(8, 8, 6)
	store.SaveScore(board, 100, 10)
	store.SaveScore(board, 200, 14)

	if err := store.ClearScores(board); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(board, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}
