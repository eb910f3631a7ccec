package game

import (
	"fmt"
	"math/rand"
)

// DefaultTarget is the tile value that marks a session as won.
const DefaultTarget = 2048

// MinBoardSize is the smallest board the session accepts. The pure board
// functions work for any N >= 1, but a playable game needs room to slide.
const MinBoardSize = 2

// ScoreStore persists the best score across sessions. Implementations must be
// best-effort: a read failure is reported as 0 and a write failure is logged
// by the store, never surfaced into the game logic.
type ScoreStore interface {
	// Best returns the stored high score, or 0 when none is stored or the
	// stored value is unreadable.
	Best() int
	// Record stores a new high score together with the highest tile reached.
	Record(score, maxTile int)
}

// Options configures a new session.
type Options struct {
	// Size is the board side length. Must be >= MinBoardSize.
	Size int
	// Target is the tile value that marks the session as won.
	// 0 means endless play with no win state.
	Target int
	// FourProbability is the chance a spawned tile is a 4.
	// Values outside [0, 1] are rejected; 0 selects the default.
	FourProbability float64
	// InitialSpawns is the number of tiles seeded at start (default 2).
	InitialSpawns int
	// Rand is the random source for spawning. When nil, a math/rand source
	// seeded with Seed is used.
	Rand Rand
	// Seed seeds the default random source when Rand is nil.
	Seed int64
	// Store persists the high score. May be nil to play without persistence.
	Store ScoreStore
}

// State is the session's coarse state.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won" // target reached, play continues
	StateOver    State = "over"
)

// Snapshot is the immutable view of a session returned after each call.
// The board is a copy; mutating it does not affect the session.
type Snapshot struct {
	Board   Board
	Size    int
	Score   int
	Best    int
	MaxTile int
	Moves   int
	State   State
	Won     bool
	Over    bool
}

// Session owns the mutable game state and sequences moves, spawns and
// terminal checks. It is not safe for concurrent use; callers apply one move
// to completion before the next, which the bubbletea update loop guarantees.
type Session struct {
	board    Board
	size     int
	target   int
	fourProb float64
	initial  int
	rng      Rand
	store    ScoreStore

	score int
	best  int
	moves int
	won   bool
	over  bool
}

// NewSession creates a session with a freshly seeded board.
func NewSession(opts Options) (*Session, error) {
	if opts.Size < MinBoardSize {
		return nil, fmt.Errorf("game: board size %d is below minimum %d", opts.Size, MinBoardSize)
	}
	if opts.FourProbability < 0 || opts.FourProbability > 1 {
		return nil, fmt.Errorf("game: four-tile probability %v outside [0, 1]", opts.FourProbability)
	}

	fourProb := opts.FourProbability
	if fourProb == 0 {
		fourProb = DefaultFourProbability
	}
	initial := opts.InitialSpawns
	if initial <= 0 {
		initial = 2
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	s := &Session{
		size:     opts.Size,
		target:   opts.Target,
		fourProb: fourProb,
		initial:  initial,
		rng:      rng,
		store:    opts.Store,
	}
	if s.store != nil {
		s.best = s.store.Best()
	}
	s.seed()
	return s, nil
}

// seed clears the board and places the initial tiles.
func (s *Session) seed() {
	s.board = NewBoard(s.size)
	for range s.initial {
		s.board, _, _ = SpawnTile(s.board, s.rng, s.fourProb)
	}
}

// Reset starts a new game on the same session: fresh board, score 0.
// The persisted best score survives the reset.
func (s *Session) Reset() Snapshot {
	s.score = 0
	s.moves = 0
	s.won = false
	s.over = false
	s.seed()
	return s.Snapshot()
}

// ApplyMove processes one direction input and returns the resulting snapshot.
// A move that does not change the board is a no-op: no spawn, no score.
// Once the session is over, inputs are ignored until Reset.
func (s *Session) ApplyMove(dir Direction) Snapshot {
	if s.over {
		return s.Snapshot()
	}

	candidate, delta := Move(s.board, dir)
	if s.board.Equal(candidate) {
		return s.Snapshot()
	}

	s.board = candidate
	s.score += delta
	s.moves++
	if s.score > s.best {
		s.best = s.score
		if s.store != nil {
			s.store.Record(s.score, s.board.MaxTile())
		}
	}

	s.board, _, _ = SpawnTile(s.board, s.rng, s.fourProb)

	if !s.won && s.target > 0 && s.board.HasTile(s.target) {
		s.won = true
	}
	if s.board.IsTerminal() {
		s.over = true
	}

	return s.Snapshot()
}

// Snapshot returns the current immutable session view.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.over:
		state = StateOver
	case s.won:
		state = StateWon
	}

	return Snapshot{
		Board:   s.board.Clone(),
		Size:    s.size,
		Score:   s.score,
		Best:    s.best,
		MaxTile: s.board.MaxTile(),
		Moves:   s.moves,
		State:   state,
		Won:     s.won,
		Over:    s.over,
	}
}

// Size returns the configured board side length.
func (s *Session) Size() int {
	return s.size
}

// Target returns the configured win tile, 0 for endless play.
func (s *Session) Target() int {
	return s.target
}
