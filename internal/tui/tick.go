// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, animation timing
// and the SSH serving mode.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameRate is the animation frame rate. The UI only ticks while an
// animation is in progress; an idle board renders no frames at all.
const frameRate = 60

// FrameMsg is sent to advance animation progress.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next animation frame.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
