// Package engine implements the 2048 board transform engine: the grid
// representation, the rotate-to-canonical merge pipeline, random tile
// spawning, histogram-based scoring, and win/loss evaluation. All of
// it is pure computation over value types; the TUI shell lives in
// internal/platform.
package engine

// Size is the board dimension. The grid is fixed at 4x4.
const Size = 4

// TargetMagnitude is the winning exponent: reaching a tile of
// magnitude 11 (displayed 2^11 = 2048) ends the game in victory.
const TargetMagnitude = 11

// InitialTiles is the number of tiles spawned on a fresh board.
const InitialTiles = 2

// Board is the 4x4 grid of tile magnitudes. A cell holds the exponent
// of its tile's displayed value: cell m shows 2^m, and 0 marks an
// empty cell. Board is a value type; == compares cell-wise.
type Board [Size][Size]uint8

// TileValue converts a magnitude to its displayed value (0 for empty).
func TileValue(m uint8) int {
	if m == 0 {
		return 0
	}
	return 1 << m
}

// CountEmpty returns the number of empty cells. Equals Size*Size only
// for a freshly created board.
func (b Board) CountEmpty() int {
	empty := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] == 0 {
				empty++
			}
		}
	}
	return empty
}

// AnyAtLeast returns true if any cell holds a magnitude at or above
// the given threshold.
func (b Board) AnyAtLeast(threshold uint8) bool {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] >= threshold {
				return true
			}
		}
	}
	return false
}

// MaxMagnitude returns the largest magnitude on the board.
func (b Board) MaxMagnitude() uint8 {
	var max uint8
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] > max {
				max = b[i][j]
			}
		}
	}
	return max
}

// RotateCW returns the board rotated one quarter-turn clockwise:
// output cell (i, j) comes from input cell (Size-1-j, i). Four
// applications are the identity.
func (b Board) RotateCW() Board {
	var r Board
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			r[i][j] = b[Size-1-j][i]
		}
	}
	return r
}

// RotateCWN returns the board rotated n quarter-turns clockwise.
// n is taken modulo 4.
func (b Board) RotateCWN(n int) Board {
	for k := 0; k < n%4; k++ {
		b = b.RotateCW()
	}
	return b
}
