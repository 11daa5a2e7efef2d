package engine

// IsVictory returns true as soon as any tile reaches the target
// magnitude.
func IsVictory(b Board) bool {
	return b.AnyAtLeast(TargetMagnitude)
}

// IsLoss returns true when no direction can change the board: merging
// left is a no-op in all four rotations. Operates on copies only; the
// live board is never mutated by the check.
func IsLoss(b Board) bool {
	rotated := b
	for i := 0; i < 4; i++ {
		if MergeLeft(rotated) != rotated {
			return false
		}
		rotated = rotated.RotateCW()
	}
	return true
}
