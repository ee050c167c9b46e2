// Package tui is the terminal collaborator. Surfaces are drawn with
// upper-half-block cells, two pixels per cell, in truecolor. Terminals do
// not report key releases, so a release is synthesized once a key has not
// repeated for the configured hold time.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RefreshRate is how often the model redraws and scans for expired keys.
const RefreshRate = 60

// TickMsg triggers a redraw and a key-release scan.
type TickMsg time.Time

// engineDoneMsg is sent once the engine function has returned.
type engineDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(rate int) tea.Cmd {
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
