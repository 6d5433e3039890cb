// Package tui provides the Bubble Tea integration for the arcade platform.
// It owns the terminal loop, key-to-seat input mapping, the fixed-timestep
// drive of game simulations, and score persistence on game over.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDt caps the simulation step so a stalled terminal cannot produce a
// tunneling-sized timestep.
const maxDt = 1.0 / 20.0

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// stepSize is the simulation dt for a tick rate, held under the engine cap.
func stepSize(tickRate int) float64 {
	dt := 1.0 / float64(tickRate)
	if dt > maxDt {
		dt = maxDt
	}
	return dt
}
