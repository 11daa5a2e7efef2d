package engine

// Snapshot captures the complete game state for determinism tests.
type Snapshot struct {
	Tick    uint64
	Moves   int
	Score   int
	Board   Board
	MaxTile int // Highest displayed tile value
	Status  Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Moves:   g.moves,
		Score:   g.score,
		Board:   g.board,
		MaxTile: TileValue(g.board.MaxMagnitude()),
		Status:  g.status,
	}
}
