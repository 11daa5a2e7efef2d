// Package core provides the platform-agnostic building blocks of the
// game: runtime configuration, the input abstraction, the screen
// buffer, and the Game interface the TUI layer drives. It has no
// external dependencies (especially no Bubble Tea) so the game logic
// stays pure and testable.
package core
