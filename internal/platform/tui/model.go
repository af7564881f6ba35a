package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flying-bird/internal/core"
	"github.com/vovakirdan/flying-bird/internal/game"
)

// Model is the Bubble Tea model hosting a running engine.
type Model struct {
	engine   *game.Engine
	surface  *Surface
	palette  palette
	keys     KeyMap
	help     help.Model
	shotDir  string // Empty disables screenshots
	width    int
	height   int
	quitting bool
}

// NewModel creates a model that forwards input to engine and shows the
// frames it draws on surface. Colors are resolved with renderer.
func NewModel(engine *game.Engine, surface *Surface, renderer *lipgloss.Renderer) Model {
	return Model{
		engine:  engine,
		surface: surface,
		palette: newPalette(renderer),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// WithScreenshotDir enables Ctrl+S screenshots saved into dir.
func (m Model) WithScreenshotDir(dir string) Model {
	m.shotDir = dir
	return m
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.surface)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleAction(mouseAction(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case FrameMsg:
		return m, waitForFrame(m.surface)
	}

	return m, nil
}

// handleAction applies a game action.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionTap:
		m.engine.Tap()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case core.ActionScreenshot:
		if m.shotDir != "" {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.surface.SaveScreenshot(m.shotDir, time.Now())
		}
	}
	return m, nil
}

// resize fits the surface above the help footer and resizes the engine to match.
func (m Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	rows := max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
	m.surface.Resize(m.width, rows)
	m.engine.Resize(m.surface.WorldSize())
}

// View renders the last frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.surface.View(m.palette) + "\n" + m.help.View(m.keys)
}

// FooterRows is the height of the collapsed help footer.
const FooterRows = 1

// Run starts the engine on surface and runs a Bubble Tea program until the
// player quits or ctx is done. The engine is stopped before Run returns.
// Screenshots go to shotDir; an empty shotDir disables them.
func Run(ctx context.Context, engine *game.Engine, surface *Surface, shotDir string) error {
	engine.Resize(surface.WorldSize())
	engine.Start(ctx, surface)
	defer surface.Close()
	defer engine.Stop()

	p := tea.NewProgram(
		NewModel(engine, surface, lipgloss.DefaultRenderer()).WithScreenshotDir(shotDir),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
