// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only outcomes are stored; a game in progress is never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-reversi/internal/config"
)

// ErrResultNotFound is returned when a match ID has no stored result.
var ErrResultNotFound = errors.New("storage: result not found")

// Winner values stored with each result.
const (
	WinnerBlack = "black"
	WinnerWhite = "white"
	WinnerDraw  = "draw"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is the outcome of one finished game.
type Result struct {
	ID        int64
	MatchID   string // UUID assigned on save when empty
	GameID    string // Registered game variant, e.g. "reversi_cpu"
	Mode      string // Mode at game end, "friend" or "cpu"
	Black     int    // Final black disc count
	White     int    // Final white disc count
	Winner    string // WinnerBlack, WinnerWhite or WinnerDraw
	Moves     int
	Duration  int // Duration in seconds
	CreatedAt time.Time
}

// Stats contains aggregated statistics over stored results.
type Stats struct {
	Mode       string // Empty for all modes
	Games      int
	BlackWins  int
	WhiteWins  int
	Draws      int
	AvgMoves   float64
	LastPlayed time.Time
}

// WinnerOf returns the winner value for the final disc counts.
func WinnerOf(black, white int) string {
	switch {
	case black > white:
		return WinnerBlack
	case white > black:
		return WinnerWhite
	default:
		return WinnerDraw
	}
}

// DefaultPath returns the results database under the XDG data home,
// creating its directory.
func DefaultPath() (string, error) {
	path, err := xdg.DataFile(filepath.Join(config.AppName, "results.db"))
	if err != nil {
		return "", fmt.Errorf("storage: cannot resolve data directory: %w", err)
	}
	return path, nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			black INTEGER NOT NULL,
			white INTEGER NOT NULL,
			winner TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_mode ON results(mode);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game. A missing match ID or winner is
// filled in. Returns the stored result.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.MatchID == "" {
		r.MatchID = uuid.New().String()
	}
	if r.Winner == "" {
		r.Winner = WinnerOf(r.Black, r.White)
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (match_id, game_id, mode, black, white, winner, moves, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.GameID, r.Mode, r.Black, r.White, r.Winner, r.Moves, r.Duration,
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save result: %w", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return r, nil
}

const resultColumns = `id, match_id, game_id, mode, black, white, winner, moves, duration_secs, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(sc rowScanner) (Result, error) {
	var r Result
	var createdAt any
	err := sc.Scan(
		&r.ID, &r.MatchID, &r.GameID, &r.Mode,
		&r.Black, &r.White, &r.Winner, &r.Moves, &r.Duration,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ResultByMatchID retrieves a result by its match ID.
func (s *Store) ResultByMatchID(matchID string) (Result, error) {
	row := s.db.QueryRow(
		`SELECT `+resultColumns+` FROM results WHERE match_id = ?`,
		matchID,
	)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return r, ErrResultNotFound
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return r, nil
}

// RecentResults retrieves the most recent results, newest first.
// An empty mode matches every mode.
func (s *Store) RecentResults(mode string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE ? = '' OR mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// GetStats aggregates results. An empty mode covers every mode.
func (s *Store) GetStats(mode string) (*Stats, error) {
	stats := &Stats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 'black'), 0),
		        COALESCE(SUM(winner = 'white'), 0),
		        COALESCE(SUM(winner = 'draw'), 0),
		        COALESCE(AVG(moves), 0),
		        MAX(created_at)
		 FROM results
		 WHERE ? = '' OR mode = ?`,
		mode, mode,
	).Scan(&stats.Games, &stats.BlackWins, &stats.WhiteWins, &stats.Draws, &stats.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearResults deletes stored results. An empty mode clears everything.
func (s *Store) ClearResults(mode string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE ? = '' OR mode = ?", mode, mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
