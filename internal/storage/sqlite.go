// Package storage provides SQLite-based persistence for game scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished-game record.
type ScoreEntry struct {
	ID        int64
	BoardSize int
	Score     int
	MaxTile   int
	CreatedAt time.Time
}

// BoardStats contains aggregated statistics for one board size.
type BoardStats struct {
	BoardSize  int
	GamesCount int
	HighScore  int
	BestTile   int
	AvgScore   float64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_size INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_board_size ON scores(board_size);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(board_size, score DESC);

		CREATE TABLE IF NOT EXISTS best_scores (
			board_size INTEGER PRIMARY KEY,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveScore records a finished game for the given board size.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(boardSize, score, maxTile int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (board_size, score, max_tile) VALUES (?, ?, ?)",
		boardSize, score, maxTile,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given board size.
// Results are ordered by score descending.
func (s *Store) TopScores(boardSize, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, board_size, score, max_tile, created_at
		 FROM scores
		 WHERE board_size = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		boardSize, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.BoardSize, &e.Score, &e.MaxTile, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the persisted best score for the given board size.
// Returns 0 if no score is stored.
func (s *Store) HighScore(boardSize int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT score FROM best_scores WHERE board_size = ?",
		boardSize,
	).Scan(&score)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// SetHighScore upserts the best score for the given board size.
func (s *Store) SetHighScore(boardSize, score, maxTile int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (board_size, score, max_tile, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(board_size) DO UPDATE SET
		   score = excluded.score,
		   max_tile = excluded.max_tile,
		   updated_at = excluded.updated_at`,
		boardSize, score, maxTile,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ClearScores deletes all records for the given board size.
func (s *Store) ClearScores(boardSize int) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE board_size = ?", boardSize); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM best_scores WHERE board_size = ?", boardSize); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// ClearAll deletes every stored record.
func (s *Store) ClearAll() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM best_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}
	return nil
}

// GetBoardStats retrieves aggregated statistics for one board size.
func (s *Store) GetBoardStats(boardSize int) (*BoardStats, error) {
	stats := &BoardStats{BoardSize: boardSize}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(max_tile), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE board_size = ?`,
		boardSize,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestTile, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE board_size = ? ORDER BY created_at DESC LIMIT 1`,
		boardSize,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllBoardStats retrieves statistics for every board size that has
// recorded games, keyed by board size.
func (s *Store) GetAllBoardStats() (map[int]*BoardStats, error) {
	rows, err := s.db.Query(
		`SELECT board_size, COUNT(*), MAX(score), MAX(max_tile), AVG(score), MAX(created_at)
		 FROM scores
		 GROUP BY board_size`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all board stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*BoardStats)
	for rows.Next() {
		var st BoardStats
		var lastPlayed any
		if err := rows.Scan(&st.BoardSize, &st.GamesCount, &st.HighScore, &st.BestTile, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.BoardSize] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
