package core

// RuntimeConfig is passed to the game at initialization. It carries
// everything the simulation needs to adapt to the terminal and to be
// reproducible.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks a time-based one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState communicates game status to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	MaxTile  int  // Highest displayed tile value on the board
	Won      bool // Target tile reached
	GameOver bool // No further moves accepted (victory or loss)
	Paused   bool // Simulation suspended
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the interface the TUI platform drives. Implementations
// contain pure logic; the platform owns input mapping, timing, and
// terminal rendering.
type Game interface {
	// ID returns the identifier used for CLI commands and score storage.
	ID() string

	// Title returns the human-readable name for display.
	Title() string

	// Reset initializes or restarts the game with the given runtime
	// configuration. Called once at start and again on restart.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick with the input
	// gathered since the previous tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
