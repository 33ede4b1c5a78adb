package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-reversi/internal/config"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestDefaultPathUnderAppDir(t *testing.T) {
	// Registered first so it runs after the environment is restored
	t.Cleanup(xdg.Reload)
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() failed: %v", err)
	}
	if want := filepath.Join(dataHome, config.AppName, "results.db"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(Result{GameID: "reversi", Mode: "friend", Black: 20, White: 16}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	results, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected 1 result after reopen, got %d", len(results))
	}
}

func TestStoreSaveResultFillsIDs(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveResult(Result{
		GameID:   "reversi_cpu",
		Mode:     "cpu",
		Black:    14,
		White:    22,
		Moves:    32,
		Duration: 95,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	if saved.ID == 0 {
		t.Error("SaveResult() should return the row ID")
	}
	if _, err := uuid.Parse(saved.MatchID); err != nil {
		t.Errorf("MatchID %q is not a UUID: %v", saved.MatchID, err)
	}
	if saved.Winner != WinnerWhite {
		t.Errorf("Winner = %q, expected white", saved.Winner)
	}

	got, err := store.ResultByMatchID(saved.MatchID)
	if err != nil {
		t.Fatalf("ResultByMatchID() failed: %v", err)
	}
	if got.GameID != "reversi_cpu" || got.Black != 14 || got.White != 22 ||
		got.Moves != 32 || got.Duration != 95 || got.Mode != "cpu" {
		t.Errorf("ResultByMatchID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)

	r := Result{MatchID: "fixed", GameID: "reversi", Mode: "friend", Black: 1, White: 0}
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(r); err == nil {
		t.Error("saving the same match ID twice should fail")
	}
}

func TestStoreResultNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.ResultByMatchID("missing")
	if !errors.Is(err, ErrResultNotFound) {
		t.Errorf("ResultByMatchID() error = %v, expected ErrResultNotFound", err)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mode := "friend"
		if i%2 == 1 {
			mode = "cpu"
		}
		if _, err := store.SaveResult(Result{GameID: "reversi", Mode: mode, Black: i, White: 2, Moves: i}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	all, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("Expected 5 results, got %d", len(all))
	}
	// Same-second inserts fall back to insertion order, newest first
	if all[0].Moves != 4 || all[4].Moves != 0 {
		t.Errorf("results not newest first: first %d last %d", all[0].Moves, all[4].Moves)
	}

	limited, _ := store.RecentResults("", 3)
	if len(limited) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(limited))
	}

	cpu, _ := store.RecentResults("cpu", 10)
	if len(cpu) != 2 {
		t.Errorf("Expected 2 cpu results, got %d", len(cpu))
	}
	for _, r := range cpu {
		if r.Mode != "cpu" {
			t.Errorf("mode filter leaked %q", r.Mode)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats("")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.Games != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	results := []Result{
		{GameID: "reversi", Mode: "friend", Black: 20, White: 16, Moves: 30},
		{GameID: "reversi", Mode: "friend", Black: 18, White: 18, Moves: 32},
		{GameID: "reversi_cpu", Mode: "cpu", Black: 10, White: 26, Moves: 32},
		{GameID: "reversi_cpu", Mode: "cpu", Black: 30, White: 6, Moves: 26},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	all, err := store.GetStats("")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if all.Games != 4 || all.BlackWins != 2 || all.WhiteWins != 1 || all.Draws != 1 {
		t.Errorf("all stats = %+v", all)
	}
	if all.AvgMoves != 30 {
		t.Errorf("AvgMoves = %v, expected 30", all.AvgMoves)
	}
	if all.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	cpu, _ := store.GetStats("cpu")
	if cpu.Games != 2 || cpu.BlackWins != 1 || cpu.WhiteWins != 1 || cpu.Draws != 0 {
		t.Errorf("cpu stats = %+v", cpu)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "reversi", Mode: "friend", Black: 3, White: 1})
	store.SaveResult(Result{GameID: "reversi_cpu", Mode: "cpu", Black: 1, White: 3})

	if err := store.ClearResults("friend"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	left, _ := store.RecentResults("", 10)
	if len(left) != 1 || left[0].Mode != "cpu" {
		t.Errorf("cpu results should survive clearing friend: %+v", left)
	}

	if err := store.ClearResults(""); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	left, _ = store.RecentResults("", 10)
	if len(left) != 0 {
		t.Errorf("Expected no results, got %d", len(left))
	}
}

func TestWinnerOf(t *testing.T) {
	tests := []struct {
		black, white int
		want         string
	}{
		{20, 16, WinnerBlack},
		{16, 20, WinnerWhite},
		{18, 18, WinnerDraw},
	}
	for _, tt := range tests {
		if got := WinnerOf(tt.black, tt.white); got != tt.want {
			t.Errorf("WinnerOf(%d, %d) = %q, expected %q", tt.black, tt.white, got, tt.want)
		}
	}
}

func TestStoreHomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/reversi/results.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "reversi", "results.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}
