// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, timers, input commits and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
// Gen identifies the timer chain; ticks from an older game are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// SpawnMsg is sent to trigger a spawn batch.
type SpawnMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(gen, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// spawnCmd returns a command that sends a spawn message after period.
func spawnCmd(gen int, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return SpawnMsg{Gen: gen, Time: t}
	})
}
