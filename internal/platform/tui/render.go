package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flying-bird/internal/core"
)

// palette maps core.Color to lipgloss styles for one renderer.
type palette map[core.Color]lipgloss.Style

// newPalette builds the game colors for r. SSH sessions pass a renderer
// bound to the session so the client's color profile is used.
func newPalette(r *lipgloss.Renderer) palette {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return palette{
		core.ColorDefault:  r.NewStyle(),
		core.ColorSky:      fg("39"),
		core.ColorCloud:    fg("15"),
		core.ColorGrass:    fg("34"),
		core.ColorObstacle: fg("2"),
		core.ColorBird:     fg("11"),
		core.ColorBeak:     fg("208"),
		core.ColorText:     r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		core.ColorAlert:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		core.ColorGray:     fg("245"),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
