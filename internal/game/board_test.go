package game

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestRotateClockwise(t *testing.T) {
	board := Board{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}

	expected := Board{
		{7, 4, 1},
		{8, 5, 2},
		{9, 6, 3},
	}

	result := board.RotateClockwise()
	if !result.Equal(expected) {
		t.Errorf("RotateClockwise: got %v, want %v", result, expected)
	}
}

func TestRotateCounterClockwise(t *testing.T) {
	board := Board{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}

	expected := Board{
		{3, 6, 9},
		{2, 5, 8},
		{1, 4, 7},
	}

	result := board.RotateCounterClockwise()
	if !result.Equal(expected) {
		t.Errorf("RotateCounterClockwise: got %v, want %v", result, expected)
	}
}

func TestRotationsAreInverses(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, size := range []int{1, 2, 3, 4, 5, 8} {
		board := NewBoard(size)
		for r := range board {
			for c := range board[r] {
				board[r][c] = 2 << rng.Intn(10)
			}
		}

		cw := board.RotateClockwise().RotateCounterClockwise()
		if !cw.Equal(board) {
			t.Errorf("size %d: ccw(cw(b)) != b", size)
		}
		ccw := board.RotateCounterClockwise().RotateClockwise()
		if !ccw.Equal(board) {
			t.Errorf("size %d: cw(ccw(b)) != b", size)
		}
	}
}

func TestRotationReturnsFreshBoard(t *testing.T) {
	board := Board{
		{2, 0},
		{0, 4},
	}

	rotated := board.RotateClockwise()
	rotated[0][0] = 99

	if board[0][0] == 99 || board[1][0] == 99 {
		t.Error("RotateClockwise shares storage with its input")
	}
}

func TestBoardEqual(t *testing.T) {
	a := Board{{2, 0}, {0, 4}}
	b := Board{{2, 0}, {0, 4}}
	c := Board{{2, 0}, {0, 8}}
	d := Board{{2}}

	if !a.Equal(b) {
		t.Error("identical boards should be equal")
	}
	if a.Equal(c) {
		t.Error("boards with different cells should not be equal")
	}
	if a.Equal(d) {
		t.Error("boards with different dimensions should not be equal")
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	board := Board{
		{2, 0, 8},
		{0, 4, 0},
		{2, 2, 2},
	}

	expected := []Cell{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
		{Row: 1, Col: 2},
	}

	cells := board.EmptyCells()
	if !reflect.DeepEqual(cells, expected) {
		t.Errorf("EmptyCells = %v, want %v", cells, expected)
	}
}

func TestHasTile(t *testing.T) {
	board := Board{
		{2, 4},
		{0, 2048},
	}

	if !board.HasTile(2048) {
		t.Error("HasTile(2048) should be true")
	}
	if board.HasTile(1024) {
		t.Error("HasTile(1024) should be false")
	}

	empty := NewBoard(4)
	if empty.HasTile(2048) {
		t.Error("an all-empty board holds no target tile")
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 512},
		{64, 8},
	}
	if board.MaxTile() != 512 {
		t.Errorf("MaxTile = %d, want 512", board.MaxTile())
	}
	if NewBoard(3).MaxTile() != 0 {
		t.Error("MaxTile of empty board should be 0")
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		terminal bool
	}{
		{
			name: "full, no adjacent equals",
			board: Board{
				{2, 4, 8},
				{16, 32, 64},
				{128, 256, 512},
			},
			terminal: true,
		},
		{
			name: "full with horizontal merge",
			board: Board{
				{2, 2, 8},
				{16, 32, 64},
				{128, 256, 512},
			},
			terminal: false,
		},
		{
			name: "full with vertical merge",
			board: Board{
				{2, 4, 8},
				{2, 32, 64},
				{128, 256, 512},
			},
			terminal: false,
		},
		{
			name: "empty cell short-circuits regardless of adjacency",
			board: Board{
				{2, 4, 8},
				{16, 0, 64},
				{128, 256, 512},
			},
			terminal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal = %v, want %v", got, tt.terminal)
			}
			if tt.board.CanMove() == tt.terminal {
				t.Error("CanMove must be the negation of IsTerminal")
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	board := Board{{2, 4}, {8, 16}}
	clone := board.Clone()
	clone[1][1] = 0

	if board[1][1] != 16 {
		t.Error("Clone shares storage with the original")
	}
}
