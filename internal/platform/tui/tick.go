// Package tui provides the Bubble Tea integration: the terminal UI
// loop, key-to-action mapping, rendering, the scoreboard view, and the
// SSH server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that emits ticks at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
