package game

// Rand is the random source used for tile spawning. *math/rand.Rand satisfies
// it; tests substitute deterministic implementations.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
}

// DefaultFourProbability is the chance a spawned tile is a 4 instead of a 2.
const DefaultFourProbability = 0.1

// SpawnTile places a new tile in a uniformly chosen empty cell of a copy of
// the board. The new tile is 4 with probability fourProb, otherwise 2.
// If the board is full the input board is returned unchanged and ok is false.
func SpawnTile(b Board, rng Rand, fourProb float64) (Board, Cell, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return b, Cell{}, false
	}

	cell := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}

	out := b.Clone()
	out[cell.Row][cell.Col] = value
	return out, cell, true
}
