// Package tui provides the Bubble Tea integration for the pathfinder.
// It handles the terminal UI loop, input mapping and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickRate is the highest accepted --fps.
const maxTickRate = 240

// TickMsg advances the visualizer by one tick.
type TickMsg time.Time

// tickInterval converts a tick rate into the delay between ticks.
// Rates are clamped to [1, maxTickRate].
func tickInterval(rate int) time.Duration {
	rate = min(max(rate, 1), maxTickRate)
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
