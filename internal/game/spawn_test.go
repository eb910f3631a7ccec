package game

import "testing"

// stubRand returns scripted values for deterministic spawn tests.
type stubRand struct {
	ints   []int
	floats []float64
}

func (s *stubRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *stubRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestSpawnTilePlacesTwo(t *testing.T) {
	board := NewBoard(2)
	rng := &stubRand{ints: []int{0}, floats: []float64{0.5}}

	result, cell, ok := SpawnTile(board, rng, DefaultFourProbability)
	if !ok {
		t.Fatal("SpawnTile on empty board should place a tile")
	}
	if cell != (Cell{Row: 0, Col: 0}) {
		t.Errorf("spawned at %v, want {0 0}", cell)
	}
	if result[0][0] != 2 {
		t.Errorf("spawned value = %d, want 2 (draw 0.5 >= 0.1)", result[0][0])
	}
}

func TestSpawnTilePlacesFour(t *testing.T) {
	board := NewBoard(2)
	rng := &stubRand{ints: []int{3}, floats: []float64{0.05}}

	result, cell, ok := SpawnTile(board, rng, DefaultFourProbability)
	if !ok {
		t.Fatal("SpawnTile on empty board should place a tile")
	}
	if cell != (Cell{Row: 1, Col: 1}) {
		t.Errorf("spawned at %v, want {1 1}", cell)
	}
	if result[1][1] != 4 {
		t.Errorf("spawned value = %d, want 4 (draw 0.05 < 0.1)", result[1][1])
	}
}

func TestSpawnTileChoosesAmongEmptyCellsOnly(t *testing.T) {
	board := Board{
		{2, 0},
		{4, 8},
	}
	rng := &stubRand{ints: []int{0}, floats: []float64{0.9}}

	result, cell, ok := SpawnTile(board, rng, DefaultFourProbability)
	if !ok {
		t.Fatal("board has an empty cell, spawn should succeed")
	}
	if cell != (Cell{Row: 0, Col: 1}) {
		t.Errorf("spawned at %v, want the only empty cell {0 1}", cell)
	}
	if result[0][1] == 0 {
		t.Error("spawned cell still empty")
	}
}

func TestSpawnTileFullBoard(t *testing.T) {
	board := Board{
		{2, 4},
		{8, 16},
	}
	rng := &stubRand{}

	result, _, ok := SpawnTile(board, rng, DefaultFourProbability)
	if ok {
		t.Error("SpawnTile on full board should report no placement")
	}
	if !result.Equal(board) {
		t.Error("SpawnTile on full board should return the board unchanged")
	}
}

func TestSpawnTileDoesNotMutateInput(t *testing.T) {
	board := NewBoard(3)
	rng := &stubRand{ints: []int{4}, floats: []float64{0.5}}

	SpawnTile(board, rng, DefaultFourProbability)

	for r := range board {
		for c := range board[r] {
			if board[r][c] != 0 {
				t.Fatalf("input board mutated at (%d,%d)", r, c)
			}
		}
	}
}
