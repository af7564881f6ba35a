package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flying-bird/internal/config"
)

// TuningRows flattens the tuning into (key, value) rows in file order.
func TuningRows(t config.Tuning) []table.Row {
	return []table.Row{
		{"bird.gravity", fmt.Sprint(t.Bird.Gravity)},
		{"bird.jump_force", fmt.Sprint(t.Bird.JumpForce)},
		{"bird.width", fmt.Sprint(t.Bird.Width)},
		{"bird.height", fmt.Sprint(t.Bird.Height)},
		{"bird.x_divisor", fmt.Sprint(t.Bird.XDivisor)},
		{"obstacles.width", fmt.Sprint(t.Obstacles.Width)},
		{"obstacles.speed", fmt.Sprint(t.Obstacles.Speed)},
		{"obstacles.min_height", fmt.Sprint(t.Obstacles.MinHeight)},
		{"obstacles.max_height", fmt.Sprint(t.Obstacles.MaxHeight)},
		{"obstacles.margin", fmt.Sprint(t.Obstacles.Margin)},
		{"obstacles.spawn_interval", t.Obstacles.SpawnInterval.String()},
		{"background.speed", fmt.Sprint(t.Background.Speed)},
		{"hud.score_x", fmt.Sprint(t.HUD.ScoreX)},
		{"hud.score_y", fmt.Sprint(t.HUD.ScoreY)},
		{"hud.line_spacing", fmt.Sprint(t.HUD.LineSpacing)},
		{"loop.tick_interval", t.Loop.TickInterval.String()},
		{"loop.stop_timeout", t.Loop.StopTimeout.String()},
		{"display.units_per_column", fmt.Sprint(t.Display.UnitsPerColumn)},
		{"display.units_per_row", fmt.Sprint(t.Display.UnitsPerRow)},
	}
}

// RenderTuning renders the effective tuning as a bordered table.
func RenderTuning(t config.Tuning) string {
	rows := TuningRows(t)
	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Key", Width: 26},
			{Title: "Value", Width: 12},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is focused in a static dump.
	s.Selected = s.Cell
	tbl.SetStyles(s)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(tbl.View())
}
