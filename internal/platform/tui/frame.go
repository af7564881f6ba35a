// Package tui hosts the game engine in a Bubble Tea program, locally or
// over SSH. The engine runs its own loop; the program only forwards input
// and repaints when a frame is published.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent when the engine has published a new frame.
type FrameMsg struct{}

// waitForFrame blocks until the surface publishes a frame or is closed.
func waitForFrame(s *Surface) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.frames:
			return FrameMsg{}
		case <-s.done:
			return nil
		}
	}
}
