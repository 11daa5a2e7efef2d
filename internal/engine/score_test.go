package engine

import "testing"

func TestScoreDelta(t *testing.T) {
	tests := []struct {
		name   string
		before Row
		after  Row
		score  int
	}{
		{"no change", Row{1, 2, 3, 0}, Row{1, 2, 3, 0}, 0},
		{"pure slide", Row{0, 0, 1, 2}, Row{1, 2, 0, 0}, 0},
		{"single merge", Row{1, 1, 0, 0}, Row{2, 0, 0, 0}, 4},
		{"merge with bystander", Row{1, 1, 2, 0}, Row{2, 2, 0, 0}, 4},
		{"two pair merges", Row{1, 1, 1, 1}, Row{2, 2, 0, 0}, 8},
		{"merges at two ranks", Row{2, 2, 1, 1}, Row{3, 2, 0, 0}, 12},
		{"high rank merge", Row{10, 10, 0, 0}, Row{11, 0, 0, 0}, 2048},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var before, after Board
			before[0] = tc.before
			after[0] = tc.after

			if got := ScoreDelta(before, after); got != tc.score {
				t.Errorf("ScoreDelta = %d, want %d", got, tc.score)
			}
		})
	}
}

func TestScoreDeltaMatchesMerge(t *testing.T) {
	// The reconciled delta for a real merge must not depend on which
	// orientation produced it.
	b := Board{
		{1, 1, 2, 2},
		{3, 3, 0, 0},
		{0, 1, 0, 1},
		{0, 0, 0, 0},
	}
	// Row merges: 4+8, 16, 4 = 32 points in every direction that
	// actually merges those pairs.
	left := Slide(b, DirLeft)
	if got := ScoreDelta(b, left); got != 32 {
		t.Errorf("ScoreDelta after left slide = %d, want 32", got)
	}

	right := Slide(b, DirRight)
	if got := ScoreDelta(b, right); got != 32 {
		t.Errorf("ScoreDelta after right slide = %d, want 32", got)
	}
}

func TestScoreDeltaNeverNegative(t *testing.T) {
	boards := []Board{
		{},
		{{1, 1, 1, 1}, {2, 2, 2, 2}, {3, 3, 3, 3}, {4, 4, 4, 4}},
		{{1, 0, 1, 0}, {0, 2, 0, 2}, {5, 5, 0, 0}, {0, 0, 0, 9}},
	}

	for _, b := range boards {
		for _, dir := range []Direction{DirLeft, DirDown, DirRight, DirUp} {
			after := Slide(b, dir)
			if got := ScoreDelta(b, after); got < 0 {
				t.Errorf("ScoreDelta(%v, %s) = %d, must be >= 0", b, dir, got)
			}
		}
	}
}
