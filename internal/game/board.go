// Package game contains the pure 2048 engine: board transforms, the
// slide-and-merge reducer, directional moves, tile spawning and the session
// state machine. It has no external dependencies to keep the game logic pure
// and testable; all I/O (rendering, persistence) lives behind interfaces
// injected by the platform layer.
package game

// Board is a square grid of tile values. 0 means empty, any other value is a
// power of two. Boards are value-like: every transform returns a fresh board
// and never mutates its input.
type Board [][]int

// Cell is a 0-indexed (row, column) coordinate on a board.
type Cell struct {
	Row int
	Col int
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for r := range b {
		b[r] = make([]int, size)
	}
	return b
}

// Size returns the board's side length.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for r, row := range b {
		c[r] = make([]int, len(row))
		copy(c[r], row)
	}
	return c
}

// Equal reports whether two boards have identical dimensions and cells.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r := range b {
		if len(b[r]) != len(other[r]) {
			return false
		}
		for c := range b[r] {
			if b[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// RotateClockwise returns a new board rotated 90° clockwise:
// the cell at (r, c) moves to (c, N-1-r).
func (b Board) RotateClockwise() Board {
	n := len(b)
	out := NewBoard(n)
	for r := range b {
		for c := range b[r] {
			out[c][n-1-r] = b[r][c]
		}
	}
	return out
}

// RotateCounterClockwise returns a new board rotated 90° counter-clockwise:
// the cell at (r, c) moves to (N-1-c, r). Exact inverse of RotateClockwise.
func (b Board) RotateCounterClockwise() Board {
	n := len(b)
	out := NewBoard(n)
	for r := range b {
		for c := range b[r] {
			out[n-1-c][r] = b[r][c]
		}
	}
	return out
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for r := range b {
		for c := range b[r] {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasTile reports whether any cell holds exactly the given value.
func (b Board) HasTile(value int) bool {
	for r := range b {
		for c := range b[r] {
			if b[r][c] == value {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the highest tile value on the board (0 for an empty board).
func (b Board) MaxTile() int {
	maxVal := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}

// CanMove reports whether at least one legal move exists: an empty cell, or
// two equal horizontally or vertically adjacent cells. The empty-cell scan
// runs first so full adjacency checking only happens on full boards.
func (b Board) CanMove() bool {
	for r := range b {
		for c := range b[r] {
			if b[r][c] == 0 {
				return true
			}
		}
	}
	n := len(b)
	for r := range b {
		for c := range b[r] {
			val := b[r][c]
			if c < n-1 && b[r][c+1] == val {
				return true
			}
			if r < n-1 && b[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether no legal move exists.
func (b Board) IsTerminal() bool {
	return !b.CanMove()
}
