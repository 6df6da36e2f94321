// Package tui runs games in a terminal with Bubble Tea: a fixed-rate tick
// loop, key mapping with held-key emulation, lipgloss rendering, a launcher,
// a scoreboard and an SSH server that serves all of them over wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the configured rate is not positive.
const defaultTickRate = 60

// TickMsg drives one simulation step.
type TickMsg time.Time

// TickInterval returns the wall-clock time between two simulation steps.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg. Each tick schedules its successor, so
// a slow frame delays the simulation instead of queueing steps.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
