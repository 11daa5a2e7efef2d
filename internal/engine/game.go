package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Status is the move engine state.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game is the move engine: it owns the board, the score, and the
// threaded random source, and applies one direction per accepted
// input. It implements core.Game for the TUI platform.
type Game struct {
	rng   *rand.Rand
	tick  uint64
	moves int

	board  Board
	score  int
	status Status

	screenW int
	screenH int

	paused        bool
	tooSmall      bool
	moveProcessed bool // at most one move per tick
}

// New creates a new game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier used for scores and the CLI.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a fresh game: empty board, zero score, a new rng from
// the config seed, and two spawned tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moves = 0
	g.score = 0
	g.status = StatusPlaying
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.moveProcessed = false

	g.board = Board{}
	for i := 0; i < InitialTiles; i++ {
		g.board = Spawn(g.board, g.rng)
	}

	g.checkScreenSize()
}

// checkScreenSize flags terminals too small for the board plus HUD.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Resize relayouts in place; the board itself is untouched, so a
// terminal resize never costs the player their game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick, applying at most one directional
// move from the input frame. Non-directional input and no-op moves are
// legal no-ops.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.status == StatusPlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Terminal states accept no further moves; restart is handled by
	// the platform through Reset.
	if g.status != StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFrom(in); ok && !g.moveProcessed {
		g.applyMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// directionFrom maps an input frame to a direction. The mapping is
// total: anything that is not one of the four directions is ignored.
func directionFrom(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionRight):
		return DirRight, true
	case in.Has(core.ActionUp):
		return DirUp, true
	}
	return DirLeft, false
}

// applyMove runs the merge pipeline for one direction: slide, score
// reconciliation against the pre-move board, a single spawn iff the
// board changed, then win/loss re-evaluation.
func (g *Game) applyMove(dir Direction) {
	before := g.board
	after := Slide(before, dir)

	// Zero when the move produced no merges, including full no-ops.
	g.score += ScoreDelta(before, after)

	if after != before {
		after = Spawn(after, g.rng)
		g.moves++
	}
	g.board = after

	switch {
	case IsVictory(g.board):
		g.status = StatusWon
	case IsLoss(g.board):
		g.status = StatusLost
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Status returns the move engine state.
func (g *Game) Status() Status {
	return g.status
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		MaxTile:  TileValue(g.board.MaxMagnitude()),
		Won:      g.status == StatusWon,
		GameOver: g.status != StatusPlaying,
		Paused:   g.paused || g.tooSmall,
	}
}
