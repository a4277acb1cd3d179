// Package tui provides the Bubble Tea integration for Brickyard.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval converts a rate in ticks per second to the delay between
// ticks. A rate below one ticks once a second rather than dividing by zero.
func tickInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(max(tickRate, 1))
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
