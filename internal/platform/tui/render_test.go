package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flying-bird/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorText)
	s.DrawText(2, 0, "cd", core.ColorObstacle)
	s.DrawText(1, 1, "ef", core.ColorAlert)

	// A renderer without a terminal emits no escape codes.
	p := newPalette(lipgloss.NewRenderer(io.Discard))

	if got, want := RenderScreen(s, p), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestPaletteCoversAllColors(t *testing.T) {
	p := newPalette(lipgloss.NewRenderer(io.Discard))
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := p[c]; !ok {
			t.Errorf("palette missing color %d", c)
		}
	}
}
