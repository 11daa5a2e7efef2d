package engine

import "math/rand"

// spawnFourChance is the probability that a spawned tile is a 4
// (magnitude 2) instead of a 2 (magnitude 1).
const spawnFourChance = 0.1

// Spawn places one new tile in a uniformly chosen empty cell and
// returns the updated board. The tile index is drawn first, then the
// tile size, from the supplied source; callers that thread the same
// seeded rng through an identical move sequence replay an identical
// game.
//
// The board must have at least one empty cell. The move engine only
// spawns after confirming the board changed, which guarantees that; a
// full board here is a logic bug, not a recoverable condition.
func Spawn(b Board, rng *rand.Rand) Board {
	empty := b.CountEmpty()
	if empty == 0 {
		panic("engine: Spawn called on a full board")
	}

	target := rng.Intn(empty)
	magnitude := uint8(1)
	if rng.Float64() < spawnFourChance {
		magnitude = 2
	}

	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] != 0 {
				continue
			}
			if target == 0 {
				b[i][j] = magnitude
				return b
			}
			target--
		}
	}

	// Unreachable: target < empty cell count.
	panic("engine: Spawn ran out of empty cells")
}
