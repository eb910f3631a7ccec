package game

// reduceLine slides and merges a single line toward the left.
// The line is first compacted (zeros removed, order preserved), then scanned
// once left to right: a pair of equal neighbours collapses into one tile of
// double value and the scan advances past both sources, so a tile produced by
// a merge never merges again in the same move. The result is right-padded
// with zeros back to the original length.
//
// Returns the reduced line and the score gained (the sum of merged values).
func reduceLine(line []int) ([]int, int) {
	compact := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			compact = append(compact, v)
		}
	}

	out := make([]int, len(line))
	score := 0
	write := 0
	for i := 0; i < len(compact); i++ {
		if i+1 < len(compact) && compact[i] == compact[i+1] {
			merged := compact[i] * 2
			out[write] = merged
			score += merged
			i++ // skip the second source tile
		} else {
			out[write] = compact[i]
		}
		write++
	}

	return out, score
}

// reverseLine returns a reversed copy of the line.
func reverseLine(line []int) []int {
	out := make([]int, len(line))
	for i, v := range line {
		out[len(line)-1-i] = v
	}
	return out
}
