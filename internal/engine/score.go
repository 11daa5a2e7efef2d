package engine

// ScoreDelta computes the points gained by a move purely from the
// magnitude histograms of the board before and after the merge phase
// (post-merge, pre-spawn). No positional information is needed, which
// makes the result independent of the rotation orientation that
// produced it.
//
// Every merge consumes two tiles of magnitude m and produces one of
// m+1, scoring 2^(m+1). Walking the ranks upward, a net loss of
// delta[m] tiles at rank m means delta[m]/2 merges happened there;
// those merges feed extra rank-m+1 tiles into the accounting one rank
// up. The bookkeeping walks up through ranks even though the merge
// pass itself never cascades.
//
// The result is always >= 0 and is zero exactly when the move produced
// no merges.
func ScoreDelta(before, after Board) int {
	var delta [TargetMagnitude + 1]int
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			delta[before[i][j]]++
			delta[after[i][j]]--
		}
	}

	score := 0
	for m := 1; m < TargetMagnitude; m++ {
		upgrades := delta[m] / 2
		if upgrades <= 0 {
			continue
		}
		score += upgrades << (m + 1)
		delta[m+1] += upgrades
	}
	return score
}
