package engine

// Row is one ordered row of magnitudes, merged independently of the
// others.
type Row [Size]uint8

// compact packs non-zero cells toward index 0, preserving their
// relative order, and zero-fills the remainder. This alone implements
// "slide with no merging".
func compact(row Row) Row {
	insert := 0
	for i := 0; i < Size; i++ {
		if row[i] == 0 {
			continue
		}
		v := row[i]
		row[i] = 0
		row[insert] = v
		insert++
	}
	return row
}

// mergeRowLeft compacts and merges one row toward index 0. The merge
// pass scans once left to right: equal non-zero neighbors become one
// tile of magnitude+1, and the produced tile is never re-examined in
// the same pass, so each tile participates in at most one merge per
// move. [m,m,m] becomes [m+1,m,0], not a cascade.
func mergeRowLeft(row Row) Row {
	row = compact(row)
	for i := 0; i < Size-1; i++ {
		if row[i] == 0 || row[i] != row[i+1] {
			continue
		}
		row[i]++
		row[i+1] = 0
	}
	return compact(row)
}

// MergeLeft applies the row merge to every row of the board: the full
// "merge toward the left edge" operation.
func MergeLeft(b Board) Board {
	for i := 0; i < Size; i++ {
		b[i] = mergeRowLeft(b[i])
	}
	return b
}

// Slide performs a move in the given direction: rotate the board so
// the direction faces left, merge left, rotate back to the original
// orientation. All four directions share this one code path.
func Slide(b Board, dir Direction) Board {
	r := dir.Rotations()
	b = b.RotateCWN(r)
	b = MergeLeft(b)
	return b.RotateCWN(4 - r)
}
