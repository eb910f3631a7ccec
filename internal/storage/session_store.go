package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// SessionStore adapts a Store to the engine's game.ScoreStore interface for
// one board size. It is best-effort: a read failure reports 0 and a write
// failure is logged, so storage problems never reach the game logic.
type SessionStore struct {
	store     *Store
	boardSize int
	logger    *log.Logger
}

// NewSessionStore binds a store to a board size.
// The logger may be nil to disable warnings.
func NewSessionStore(store *Store, boardSize int, logger *log.Logger) *SessionStore {
	return &SessionStore{
		store:     store,
		boardSize: boardSize,
		logger:    logger,
	}
}

// Best returns the persisted high score, or 0 when unavailable.
func (s *SessionStore) Best() int {
	best, err := s.store.HighScore(s.boardSize)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("could not read high score", "board_size", s.boardSize, "error", err)
		}
		return 0
	}
	return best
}

// Record persists a new high score. Failures are logged and swallowed.
func (s *SessionStore) Record(score, maxTile int) {
	if err := s.store.SetHighScore(s.boardSize, score, maxTile); err != nil {
		if s.logger != nil {
			s.logger.Warn("could not save high score", "board_size", s.boardSize, "error", err)
		}
	}
}

// Ensure SessionStore implements game.ScoreStore.
var _ game.ScoreStore = (*SessionStore)(nil)
