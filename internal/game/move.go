package game

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MoveLeft slides all rows toward the left.
// Returns the new board and the total score gained from merges.
func MoveLeft(b Board) (Board, int) {
	out := make(Board, len(b))
	total := 0
	for r, row := range b {
		newRow, score := reduceLine(row)
		out[r] = newRow
		total += score
	}
	return out, total
}

// MoveRight slides all rows toward the right: reverse each row, reduce left,
// reverse back.
func MoveRight(b Board) (Board, int) {
	out := make(Board, len(b))
	total := 0
	for r, row := range b {
		newRow, score := reduceLine(reverseLine(row))
		out[r] = reverseLine(newRow)
		total += score
	}
	return out, total
}

// MoveUp slides all columns toward the top: rotate counter-clockwise so the
// top edge becomes the left edge, reduce left, rotate back.
func MoveUp(b Board) (Board, int) {
	rotated, score := MoveLeft(b.RotateCounterClockwise())
	return rotated.RotateClockwise(), score
}

// MoveDown slides all columns toward the bottom: rotate clockwise so the
// bottom edge becomes the left edge, reduce left, rotate back.
func MoveDown(b Board) (Board, int) {
	rotated, score := MoveLeft(b.RotateClockwise())
	return rotated.RotateCounterClockwise(), score
}

// Move performs a move in the given direction. All four directions share the
// single leftward reducer via geometry transforms, so a change to the merge
// semantics applies uniformly. The input board is never mutated.
func Move(b Board, dir Direction) (Board, int) {
	switch dir {
	case DirLeft:
		return MoveLeft(b)
	case DirRight:
		return MoveRight(b)
	case DirUp:
		return MoveUp(b)
	case DirDown:
		return MoveDown(b)
	default:
		return b.Clone(), 0
	}
}
