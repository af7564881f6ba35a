package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flying-bird/internal/game"
	"github.com/vovakirdan/flying-bird/internal/platform/tui"
)

var (
	flagLogFile       string
	flagScreenshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W/Enter/Click  - Flap (restart after game over)
  ?                       - Toggle help
  Ctrl+S                  - Save a text screenshot
  Q/Esc/Ctrl+C            - Quit

Logs would corrupt the game screen, so they are discarded unless
--log-file is given.

Examples:
  flyingbird play
  flyingbird play --seed 7
  flyingbird play --log-file bird.log --log-level debug
  flyingbird play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshot-dir", "", "Directory for Ctrl+S screenshots (default ~/.flyingbird/screenshots)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut, "flyingbird")
	if err != nil {
		return err
	}

	tuning, rc, err := loadSettings()
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	seed := rc.ResolveSeed()
	logger.Info("starting game", "seed", seed, "cols", rc.ScreenW, "rows", rc.ScreenH, "tick", tuning.Loop.TickInterval)

	surface := tui.NewSurface(rc.ScreenW, max(rc.ScreenH-tui.FooterRows, 0), tuning.Display)
	engine := game.New(tuning,
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shotDir := flagScreenshotDir
	if shotDir == "" {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			shotDir = filepath.Join(home, ".flyingbird", "screenshots")
		}
	}

	if err := tui.Run(ctx, engine, surface, shotDir); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	snap := engine.Snapshot()
	logger.Info("game closed", "score", snap.Score, "state", snap.State)
	return nil
}
